package service

import "supercharge_backend/internal/catalog"

// QuizQuestionView 题目的对外形态
type QuizQuestionView struct {
	ID       string           `json:"id"`
	Question string           `json:"question"`
	Options  []QuizOptionView `json:"options"`
}

type QuizOptionView struct {
	Text string `json:"text"`
}

type quizOption struct {
	Text         string
	PathWeights  map[string]int
	Medium       catalog.ResourceType
	MediumWeight int
}

type quizQuestion struct {
	ID      string
	Text    string
	Options []quizOption
}

// quizQuestions 测验题库。与职业路径目录一样属于只读参考数据。
var quizQuestions = []quizQuestion{
	{
		ID:   "q1",
		Text: "What kind of problems excite you the most?",
		Options: []quizOption{
			{
				Text:        "Building apps and tools people use every day",
				PathWeights: map[string]int{"software-dev": 3, "web3": 1},
				Medium:      catalog.ResourceCourse, MediumWeight: 1,
			},
			{
				Text:        "Finding weaknesses before attackers do",
				PathWeights: map[string]int{"cybersecurity": 3},
				Medium:      catalog.ResourceVideo, MediumWeight: 1,
			},
			{
				Text:        "Teaching machines to recognize patterns",
				PathWeights: map[string]int{"ai-ml": 3, "data-science": 2},
				Medium:      catalog.ResourceArticle, MediumWeight: 1,
			},
			{
				Text:        "Keeping large systems running smoothly",
				PathWeights: map[string]int{"cloud-engineering": 3, "software-dev": 1},
				Medium:      catalog.ResourceCourse, MediumWeight: 1,
			},
		},
	},
	{
		ID:   "q2",
		Text: "How do you prefer to learn something new?",
		Options: []quizOption{
			{
				Text:        "Watching someone demonstrate it step by step",
				PathWeights: map[string]int{"software-dev": 1, "cybersecurity": 1},
				Medium:      catalog.ResourceVideo, MediumWeight: 3,
			},
			{
				Text:        "Reading documentation and in-depth articles",
				PathWeights: map[string]int{"data-science": 1, "ai-ml": 1},
				Medium:      catalog.ResourceArticle, MediumWeight: 3,
			},
			{
				Text:        "Working through a structured course with exercises",
				PathWeights: map[string]int{"cloud-engineering": 1, "software-dev": 1},
				Medium:      catalog.ResourceCourse, MediumWeight: 3,
			},
			{
				Text:        "Experimenting on my own until it clicks",
				PathWeights: map[string]int{"web3": 2, "cybersecurity": 1},
				Medium:      catalog.ResourceCourse, MediumWeight: 2,
			},
		},
	},
	{
		ID:   "q3",
		Text: "Which statement sounds most like you?",
		Options: []quizOption{
			{
				Text:        "I enjoy making data tell a story",
				PathWeights: map[string]int{"data-science": 3, "ai-ml": 1},
				Medium:      catalog.ResourceArticle, MediumWeight: 2,
			},
			{
				Text:        "I want to be on the cutting edge of technology",
				PathWeights: map[string]int{"web3": 3, "ai-ml": 2},
				Medium:      catalog.ResourceVideo, MediumWeight: 1,
			},
			{
				Text:        "I like understanding how things break",
				PathWeights: map[string]int{"cybersecurity": 3},
				Medium:      catalog.ResourceCourse, MediumWeight: 1,
			},
			{
				Text:        "I love seeing my code come to life on screen",
				PathWeights: map[string]int{"software-dev": 3},
				Medium:      catalog.ResourceVideo, MediumWeight: 2,
			},
		},
	},
	{
		ID:   "q4",
		Text: "What's your comfort level with mathematics?",
		Options: []quizOption{
			{
				Text:        "Very comfortable, I enjoy statistics and calculus",
				PathWeights: map[string]int{"ai-ml": 3, "data-science": 3},
				Medium:      catalog.ResourceArticle, MediumWeight: 1,
			},
			{
				Text:        "Comfortable with logic, less so with heavy math",
				PathWeights: map[string]int{"software-dev": 2, "cloud-engineering": 2},
				Medium:      catalog.ResourceCourse, MediumWeight: 1,
			},
			{
				Text:        "I prefer hands-on work over formulas",
				PathWeights: map[string]int{"cybersecurity": 2, "cloud-engineering": 1},
				Medium:      catalog.ResourceVideo, MediumWeight: 2,
			},
			{
				Text:        "I can pick up whatever the job needs",
				PathWeights: map[string]int{"web3": 2, "software-dev": 1},
				Medium:      catalog.ResourceCourse, MediumWeight: 2,
			},
		},
	},
	{
		ID:   "q5",
		Text: "Where do you see yourself in five years?",
		Options: []quizOption{
			{
				Text:        "Leading the architecture of a large product",
				PathWeights: map[string]int{"software-dev": 2, "cloud-engineering": 2},
				Medium:      catalog.ResourceArticle, MediumWeight: 1,
			},
			{
				Text:        "Defending a company as a security specialist",
				PathWeights: map[string]int{"cybersecurity": 3},
				Medium:      catalog.ResourceCourse, MediumWeight: 1,
			},
			{
				Text:        "Researching and shipping intelligent products",
				PathWeights: map[string]int{"ai-ml": 3, "data-science": 2},
				Medium:      catalog.ResourceArticle, MediumWeight: 2,
			},
			{
				Text:        "Building the decentralized web",
				PathWeights: map[string]int{"web3": 3},
				Medium:      catalog.ResourceVideo, MediumWeight: 1,
			},
		},
	},
}

// pathReasons 推荐理由文案
var pathReasons = map[string]string{
	"software-dev":      "Your answers show a builder's mindset and a love for shipping working software",
	"cybersecurity":     "You have a natural instinct for thinking like an attacker and protecting systems",
	"ai-ml":             "Your comfort with math and pattern thinking fits machine learning work well",
	"data-science":      "You enjoy digging into data and turning numbers into decisions",
	"web3":              "You gravitate toward emerging technology and decentralized systems",
	"cloud-engineering": "You like keeping large-scale infrastructure reliable and automated",
}
