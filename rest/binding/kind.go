package binding

// Kind is the expected shape of a field or of the elements of a TypedList.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindNumber
	KindBool
	KindEnum
	KindDate
	KindDateTime
	KindModel
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindModel:
		return "model"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}
