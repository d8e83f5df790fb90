package entities

// EntityCategory is the semantic category assigned to a named entity by the
// linguistic analyzer
type EntityCategory string

const (
	EntityPerson EntityCategory = "PERSON"
	EntityDate   EntityCategory = "DATE"
)

// Entity is a tagged span of sentence text
type Entity struct {
	Text     string         `json:"text"`
	Category EntityCategory `json:"category"`
}

// Sentence is one analyzer-segmented span of the transcript together with
// its recognized named entities, in analyzer report order. Sentences are
// derived fresh per extraction call and never mutated.
type Sentence struct {
	Text     string   `json:"text"`
	Entities []Entity `json:"entities"`
}
