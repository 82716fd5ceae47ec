package service

import (
	"errors"
	"testing"

	"supercharge_backend/internal/catalog"
	"supercharge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizService() *QuizService {
	return NewQuizService(catalog.Default())
}

// 每题都选同一个选项下标
func uniformSubmission(option int) QuizSubmission {
	var sub QuizSubmission
	for _, q := range quizQuestions {
		sub.Answers = append(sub.Answers, QuizAnswer{QuestionID: q.ID, SelectedOption: option})
	}
	return sub
}

func TestQuestionsHideWeights(t *testing.T) {
	s := newQuizService()

	questions := s.Questions()
	require.Len(t, questions, 5)
	for _, q := range questions {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Question)
		require.Len(t, q.Options, 4)
		for _, opt := range q.Options {
			assert.NotEmpty(t, opt.Text)
		}
	}
}

func TestScoreValidation(t *testing.T) {
	s := newQuizService()

	tests := []struct {
		name   string
		mutate func(*QuizSubmission)
	}{
		{
			name:   "missing answers",
			mutate: func(sub *QuizSubmission) { sub.Answers = sub.Answers[:3] },
		},
		{
			name:   "unknown question",
			mutate: func(sub *QuizSubmission) { sub.Answers[0].QuestionID = "q99" },
		},
		{
			name:   "duplicate question",
			mutate: func(sub *QuizSubmission) { sub.Answers[1].QuestionID = sub.Answers[0].QuestionID },
		},
		{
			name:   "option below range",
			mutate: func(sub *QuizSubmission) { sub.Answers[2].SelectedOption = -1 },
		},
		{
			name:   "option above range",
			mutate: func(sub *QuizSubmission) { sub.Answers[2].SelectedOption = 4 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := uniformSubmission(0)
			tt.mutate(&sub)

			_, err := s.Score(sub)
			require.Error(t, err)

			var vErr *util.ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := newQuizService()
	sub := uniformSubmission(1)

	first, err := s.Score(sub)
	require.NoError(t, err)
	second, err := s.Score(sub)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScoreRanking(t *testing.T) {
	s := newQuizService()

	result, err := s.Score(uniformSubmission(0))
	require.NoError(t, err)
	require.Len(t, result.RecommendedPaths, 6)

	// 最高分归一化到100，其余按比例缩放，降序排列
	assert.Equal(t, 100, result.RecommendedPaths[0].Score)
	for i := 1; i < len(result.RecommendedPaths); i++ {
		assert.LessOrEqual(t, result.RecommendedPaths[i].Score, result.RecommendedPaths[i-1].Score)
		assert.GreaterOrEqual(t, result.RecommendedPaths[i].Score, 0)
	}

	// 全选第一项：software-dev 与 data-science 原始分并列最高，
	// 同分按目录顺序排列，software-dev 在前
	assert.Equal(t, "software-dev", result.RecommendedPaths[0].PathID)
	assert.Equal(t, 100, result.RecommendedPaths[1].Score)
	assert.Equal(t, "data-science", result.RecommendedPaths[1].PathID)

	for _, rec := range result.RecommendedPaths {
		assert.NotEmpty(t, rec.PathName)
		assert.NotEmpty(t, rec.Reason)
		assert.Greater(t, rec.EstimatedWeeks, 0)
	}
}

func TestScoreTargetedAnswersFavorPath(t *testing.T) {
	s := newQuizService()

	// 每题都选更偏网络安全的选项
	sub := QuizSubmission{Answers: []QuizAnswer{
		{QuestionID: "q1", SelectedOption: 1},
		{QuestionID: "q2", SelectedOption: 0},
		{QuestionID: "q3", SelectedOption: 2},
		{QuestionID: "q4", SelectedOption: 2},
		{QuestionID: "q5", SelectedOption: 1},
	}}

	result, err := s.Score(sub)
	require.NoError(t, err)

	assert.Equal(t, "cybersecurity", result.RecommendedPaths[0].PathID)
	assert.Equal(t, 100, result.RecommendedPaths[0].Score)
	assert.Equal(t, "video", result.LearningStyle)
}

func TestLearningStyle(t *testing.T) {
	tests := []struct {
		name    string
		weights map[catalog.ResourceType]int
		want    string
	}{
		{"empty", map[catalog.ResourceType]int{}, "all"},
		{"single winner", map[catalog.ResourceType]int{catalog.ResourceVideo: 3, catalog.ResourceArticle: 1}, "video"},
		{"two-way tie", map[catalog.ResourceType]int{catalog.ResourceVideo: 3, catalog.ResourceArticle: 3}, "all"},
		{"three-way tie", map[catalog.ResourceType]int{catalog.ResourceVideo: 2, catalog.ResourceArticle: 2, catalog.ResourceCourse: 2}, "all"},
		{"course wins", map[catalog.ResourceType]int{catalog.ResourceCourse: 5, catalog.ResourceVideo: 4}, "course"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, learningStyle(tt.weights))
		})
	}
}
