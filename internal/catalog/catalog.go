package catalog

// 职业路径目录。只读参考数据，进程启动时构建一次，引擎只读不写。

type ResourceType string

const (
	ResourceVideo   ResourceType = "video"
	ResourceArticle ResourceType = "article"
	ResourceCourse  ResourceType = "course"
)

type Resource struct {
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Type  ResourceType `json:"type"`
}

type Milestone struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Order         int        `json:"order"`
	EstimatedDays int        `json:"estimated_days"`
	Resources     []Resource `json:"resources"`
}

type CareerPath struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Color       string      `json:"color"`
	Milestones  []Milestone `json:"milestones"`
}

// Catalog 不可变目录，提供路径与里程碑的索引查询
type Catalog struct {
	paths      []CareerPath
	pathIndex  map[string]int
	milestones map[string]map[string]*Milestone
}

func New(paths []CareerPath) *Catalog {
	c := &Catalog{
		paths:      paths,
		pathIndex:  make(map[string]int, len(paths)),
		milestones: make(map[string]map[string]*Milestone, len(paths)),
	}
	for i := range paths {
		p := &c.paths[i]
		c.pathIndex[p.ID] = i
		byID := make(map[string]*Milestone, len(p.Milestones))
		for j := range p.Milestones {
			byID[p.Milestones[j].ID] = &p.Milestones[j]
		}
		c.milestones[p.ID] = byID
	}
	return c
}

// Default 返回内置的职业路径目录
func Default() *Catalog {
	return New(careerPaths)
}

// Paths 按目录声明顺序返回全部路径
func (c *Catalog) Paths() []CareerPath {
	return c.paths
}

func (c *Catalog) Path(id string) (*CareerPath, bool) {
	i, ok := c.pathIndex[id]
	if !ok {
		return nil, false
	}
	return &c.paths[i], true
}

func (c *Catalog) Milestone(pathID, milestoneID string) (*Milestone, bool) {
	byID, ok := c.milestones[pathID]
	if !ok {
		return nil, false
	}
	m, ok := byID[milestoneID]
	return m, ok
}

// OrderIndex 路径在目录中的序号，测验推荐按此打破平分
func (c *Catalog) OrderIndex(pathID string) int {
	i, ok := c.pathIndex[pathID]
	if !ok {
		return len(c.paths)
	}
	return i
}

// TotalDays 路径所有里程碑预估天数之和
func (p *CareerPath) TotalDays() int {
	total := 0
	for _, m := range p.Milestones {
		total += m.EstimatedDays
	}
	return total
}
