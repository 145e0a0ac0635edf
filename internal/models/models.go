package models

// Fruits is the default candidate list
var Fruits = []string{
	"Apple",
	"Apricot",
	"Avocado",
	"Banana",
	"Blackberry",
	"Blueberry",
	"Cherry",
	"Coconut",
	"Grape",
	"Grapefruit",
	"Kiwi",
	"Lemon",
	"Lime",
	"Mango",
	"Orange",
	"Papaya",
	"Peach",
	"Pear",
	"Pineapple",
}

// SourceKind names where candidates come from
type SourceKind string

const (
	SourceStatic SourceKind = "static"
	SourceHTTP   SourceKind = "http"
	SourceDynamo SourceKind = "dynamodb"
)

// SourceKinds lists the accepted source names
var SourceKinds = []SourceKind{SourceStatic, SourceHTTP, SourceDynamo}

// Remote reports whether the source performs a real lookup
func (k SourceKind) Remote() bool {
	return k == SourceHTTP || k == SourceDynamo
}

// Valid reports whether k is a known source
func (k SourceKind) Valid() bool {
	for _, s := range SourceKinds {
		if s == k {
			return true
		}
	}
	return false
}
