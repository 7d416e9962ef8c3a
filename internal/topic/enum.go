package topic

type Category string

const (
	CategoryCommon Category = "Common"
	CategoryIT     Category = "IT-specific"
	CategoryGovt   Category = "Govt-specific"
)

var AllCategories = []Category{
	CategoryCommon,
	CategoryIT,
	CategoryGovt,
}

func (c Category) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}
