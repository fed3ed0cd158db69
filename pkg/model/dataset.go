package model

// DatasetKind 区分数据集是否自带 topic 列
type DatasetKind int

const (
	// KindUntopicked 数据集没有 topic 列，需要关键词匹配分配主题
	KindUntopicked DatasetKind = iota
	// KindTopicked 数据集自带 topic 列
	KindTopicked
)

func (k DatasetKind) String() string {
	switch k {
	case KindTopicked:
		return "topicked"
	case KindUntopicked:
		return "untopicked"
	default:
		return "unknown"
	}
}

// Dataset 加载到内存中的数据集
type Dataset struct {
	Kind    DatasetKind
	Records []Record
}

func NewTopickedDataset(records []Record) *Dataset {
	return &Dataset{Kind: KindTopicked, Records: records}
}

func NewUntopickedDataset(records []Record) *Dataset {
	return &Dataset{Kind: KindUntopicked, Records: records}
}
