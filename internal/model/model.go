// Package model defines the domain types for Gebo.
package model

// ReqType classifies a requirement. Every SPEC-OBJECT in the output
// references the SPEC-OBJECT-TYPE derived from this value.
type ReqType string

const (
	ReqTypeFunctional  ReqType = "functional"
	ReqTypeInterface   ReqType = "interface"
	ReqTypePerformance ReqType = "performance"
)

// ReqTypes lists the recognized requirement types in vocabulary order.
func ReqTypes() []string {
	return []string{string(ReqTypeFunctional), string(ReqTypeInterface), string(ReqTypePerformance)}
}

// Status is the review state of a requirement.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusWIP      Status = "wip"
	StatusReviewed Status = "reviewed"
	StatusApproved Status = "approved"
)

// Statuses lists the recognized status values in vocabulary order.
func Statuses() []string {
	return []string{string(StatusDraft), string(StatusWIP), string(StatusReviewed), string(StatusApproved)}
}

// Priority is the implementation priority of a requirement.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists the recognized priority values in vocabulary order.
func Priorities() []string {
	return []string{string(PriorityHigh), string(PriorityMedium), string(PriorityLow)}
}

// RelationKind classifies a traceability relation between two requirements.
type RelationKind string

const (
	RelationSatisfy RelationKind = "satisfy"
	RelationDerive  RelationKind = "derive"
	RelationRefine  RelationKind = "refine"
)

// RelationKinds lists the recognized relation types in vocabulary order.
func RelationKinds() []string {
	return []string{string(RelationSatisfy), string(RelationDerive), string(RelationRefine)}
}

// Requirement is one requirement destined to become a SPEC-OBJECT.
//
// Optional fields are pointers: nil means the column was omitted, while a
// pointer to "" means the cell was present but blank. The two must never
// collapse into one another — absent fields are omitted from the output,
// blank ones are emitted as empty attribute values.
type Requirement struct {
	Identifier  string
	IEPUID      string
	Type        ReqType
	ForeignID   string
	Name        string
	Chapter     *string
	Description *string
	TextContent *string
	Status      *Status
	Priority    *Priority
	ReqPrefix   *string
	Order       *int64
}

// Relation is a typed directed edge between two requirements. SourceID and
// TargetID are resolved requirement identifiers, never raw PUIDs.
type Relation struct {
	Identifier string
	Kind       RelationKind
	SourceID   string
	TargetID   string
}

// Document is the root aggregate for one conversion run. It owns all
// requirements and relations; it is populated once by the builder and then
// consumed read-only by the serializer.
type Document struct {
	Title        string
	Requirements []Requirement
	Relations    []Relation
}

// RequirementByID returns the requirement with the given identifier.
func (d *Document) RequirementByID(id string) (*Requirement, bool) {
	for i := range d.Requirements {
		if d.Requirements[i].Identifier == id {
			return &d.Requirements[i], true
		}
	}
	return nil, false
}
