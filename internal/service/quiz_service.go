package service

import (
	"math"
	"sort"
	"supercharge_backend/internal/catalog"
	"supercharge_backend/internal/util"
)

// QuizAnswer 单题作答
type QuizAnswer struct {
	QuestionID     string `json:"question_id" binding:"required"`
	SelectedOption int    `json:"selected_option"`
}

// QuizSubmission 完整答卷，必须一次性覆盖全部题目
type QuizSubmission struct {
	Answers []QuizAnswer `json:"answers" binding:"required"`
}

// RecommendedPath 推荐结果中的一条路径
type RecommendedPath struct {
	PathID         string `json:"path_id"`
	PathName       string `json:"path_name"`
	Reason         string `json:"reason"`
	EstimatedWeeks int    `json:"estimated_weeks"`
	Score          int    `json:"score"`
}

// QuizResult 测验推荐结果。纯计算产物，不持久化。
type QuizResult struct {
	RecommendedPaths []RecommendedPath `json:"recommended_paths"`
	LearningStyle    string            `json:"learning_style"`
}

type QuizService struct {
	Catalog *catalog.Catalog
}

func NewQuizService(cat *catalog.Catalog) *QuizService {
	return &QuizService{Catalog: cat}
}

// Questions 返回当前题库（不含权重，权重是服务端私有的打分依据）
func (s *QuizService) Questions() []QuizQuestionView {
	views := make([]QuizQuestionView, len(quizQuestions))
	for i, q := range quizQuestions {
		view := QuizQuestionView{ID: q.ID, Question: q.Text}
		for _, opt := range q.Options {
			view.Options = append(view.Options, QuizOptionView{Text: opt.Text})
		}
		views[i] = view
	}
	return views
}

// Score 对答卷打分并给出职业路径推荐。
// 相同输入永远得到相同输出：打分只依赖题库与目录两份静态数据。
func (s *QuizService) Score(submission QuizSubmission) (*QuizResult, error) {
	if len(submission.Answers) != len(quizQuestions) {
		return nil, util.NewValidation("expected %d answers, got %d", len(quizQuestions), len(submission.Answers))
	}

	questionByID := make(map[string]*quizQuestion, len(quizQuestions))
	for i := range quizQuestions {
		questionByID[quizQuestions[i].ID] = &quizQuestions[i]
	}

	pathWeights := make(map[string]int)
	mediumWeights := make(map[catalog.ResourceType]int)
	seen := make(map[string]bool, len(submission.Answers))

	for _, answer := range submission.Answers {
		question, ok := questionByID[answer.QuestionID]
		if !ok {
			return nil, util.NewValidation("unknown question id: %s", answer.QuestionID)
		}
		if seen[answer.QuestionID] {
			return nil, util.NewValidation("duplicate answer for question: %s", answer.QuestionID)
		}
		seen[answer.QuestionID] = true

		if answer.SelectedOption < 0 || answer.SelectedOption >= len(question.Options) {
			return nil, util.NewValidation("option index %d out of range for question %s", answer.SelectedOption, answer.QuestionID)
		}

		option := question.Options[answer.SelectedOption]
		for pathID, weight := range option.PathWeights {
			pathWeights[pathID] += weight
		}
		mediumWeights[option.Medium] += option.MediumWeight
	}

	return &QuizResult{
		RecommendedPaths: s.rankPaths(pathWeights),
		LearningStyle:    learningStyle(mediumWeights),
	}, nil
}

// rankPaths 归一化到0-100并排序：最高原始分记100，其余按比例缩放。
// 原始分为小整数且上限远低于100，不同原始分四舍五入后仍保持严格次序。
// 同分路径按目录声明顺序排列。
func (s *QuizService) rankPaths(pathWeights map[string]int) []RecommendedPath {
	maxRaw := 0
	for _, raw := range pathWeights {
		if raw > maxRaw {
			maxRaw = raw
		}
	}

	ranked := make([]RecommendedPath, 0, len(s.Catalog.Paths()))
	for _, path := range s.Catalog.Paths() {
		raw := pathWeights[path.ID]
		score := 0
		if maxRaw > 0 {
			score = int(math.Round(100 * float64(raw) / float64(maxRaw)))
		}
		ranked = append(ranked, RecommendedPath{
			PathID:         path.ID,
			PathName:       path.Name,
			Reason:         pathReasons[path.ID],
			EstimatedWeeks: (path.TotalDays() + 6) / 7,
			Score:          score,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return s.Catalog.OrderIndex(ranked[i].PathID) < s.Catalog.OrderIndex(ranked[j].PathID)
	})
	return ranked
}

// learningStyle 权重最高的学习媒介；并列最高时返回 all
func learningStyle(mediumWeights map[catalog.ResourceType]int) string {
	best := 0
	for _, w := range mediumWeights {
		if w > best {
			best = w
		}
	}
	if best == 0 {
		return "all"
	}

	var top []catalog.ResourceType
	for _, medium := range []catalog.ResourceType{catalog.ResourceVideo, catalog.ResourceArticle, catalog.ResourceCourse} {
		if mediumWeights[medium] == best {
			top = append(top, medium)
		}
	}
	if len(top) != 1 {
		return "all"
	}
	return string(top[0])
}
