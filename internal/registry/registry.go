// Package registry holds the fixed ReqIF type tables: the three
// SPEC-OBJECT-TYPEs, the three SPEC-RELATION-TYPEs, their attribute
// definitions, and the primitive datatype definitions they reference.
//
// Every identifier in this package is stable across runs and processes so
// that repeated conversions of the same input are structurally comparable.
// Nothing here mutates after package initialization.
package registry

import "github.com/starford/gebo/internal/model"

// Datatype definition identifiers.
const (
	DatatypeString   = "DT-STRING"
	DatatypeInteger  = "DT-INTEGER"
	DatatypeStatus   = "DT-STATUS"
	DatatypePriority = "DT-PRIORITY"
)

// Document-level identifiers.
const (
	HeaderID            = "HDR-001"
	SpecificationID     = "SP-001"
	SpecificationTypeID = "T-MODULE"
	AttrModuleID        = "AD-MOD-ID"
	AttrModuleDesc      = "AD-MOD-DESC"
)

// AttrKind selects the ReqIF attribute definition/value element family.
type AttrKind int

const (
	AttrString AttrKind = iota
	AttrEnumeration
	AttrInteger
)

// AttrDef is one attribute definition owned by a SPEC-OBJECT-TYPE.
type AttrDef struct {
	Field       string // canonical field key, e.g. "ie_puid"
	ID          string // e.g. "F-AD-IEPUID"
	LongName    string // e.g. "IE PUID"
	Kind        AttrKind
	DatatypeRef string
}

// SpecType is one of the three fixed SPEC-OBJECT-TYPE definitions.
type SpecType struct {
	ID         string
	LongName   string
	Attributes []AttrDef
}

// AttrByField returns the attribute definition for a canonical field key.
func (t SpecType) AttrByField(field string) (AttrDef, bool) {
	for _, a := range t.Attributes {
		if a.Field == field {
			return a, true
		}
	}
	return AttrDef{}, false
}

// RelationType is one of the three fixed SPEC-RELATION-TYPE definitions.
type RelationType struct {
	ID       string
	LongName string
}

// EnumValue is one member of an enumeration datatype, with its embedded
// ordinal key.
type EnumValue struct {
	ID       string
	LongName string
	Key      int
}

// attrSchema is the shared attribute layout; per-type definitions differ
// only in the identifier prefix. The order here is the emission order.
var attrSchema = []struct {
	field    string
	suffix   string
	longName string
	kind     AttrKind
	datatype string
}{
	{"foreign_id", "FOREIGNID", "ReqIF.ForeignID", AttrString, DatatypeString},
	{"name", "NAME", "ReqIF.Name", AttrString, DatatypeString},
	{"ie_puid", "IEPUID", "IE PUID", AttrString, DatatypeString},
	{"chapter", "CHAP", "ReqIF.ChapterName", AttrString, DatatypeString},
	{"description", "DESC", "ReqIF.Description", AttrString, DatatypeString},
	{"req_prefix", "PREFIX", "ReqIF.Prefix", AttrString, DatatypeString},
	{"text_content", "TEXT", "ReqIF.Text", AttrString, DatatypeString},
	{"status", "STATUS", "Status", AttrEnumeration, DatatypeStatus},
	{"priority", "PRIORITY", "Priority", AttrEnumeration, DatatypePriority},
	{"order", "ORDER", "Order", AttrInteger, DatatypeInteger},
}

func newSpecType(id, longName, prefix string) SpecType {
	attrs := make([]AttrDef, 0, len(attrSchema))
	for _, a := range attrSchema {
		attrs = append(attrs, AttrDef{
			Field:       a.field,
			ID:          prefix + "-AD-" + a.suffix,
			LongName:    a.longName,
			Kind:        a.kind,
			DatatypeRef: a.datatype,
		})
	}
	return SpecType{ID: id, LongName: longName, Attributes: attrs}
}

var specTypes = map[model.ReqType]SpecType{
	model.ReqTypeFunctional:  newSpecType("T-REQ-FUNCTIONAL", "functional", "F"),
	model.ReqTypeInterface:   newSpecType("T-REQ-INTERFACE", "interface", "I"),
	model.ReqTypePerformance: newSpecType("T-REQ-PERFORMANCE", "performance", "P"),
}

var relationTypes = map[model.RelationKind]RelationType{
	model.RelationSatisfy: {ID: "T-REL-SATISFY", LongName: "satisfy"},
	model.RelationDerive:  {ID: "T-REL-DERIVE", LongName: "derive"},
	model.RelationRefine:  {ID: "T-REL-REFINE", LongName: "refine"},
}

var statusValues = []EnumValue{
	{ID: "EV-STATUS-DRAFT", LongName: "Draft", Key: 0},
	{ID: "EV-STATUS-WIP", LongName: "Work-in-progress", Key: 1},
	{ID: "EV-STATUS-REVIEWED", LongName: "Reviewed", Key: 2},
	{ID: "EV-STATUS-APPROVED", LongName: "Approved", Key: 3},
}

var priorityValues = []EnumValue{
	{ID: "EV-PRIO-HIGH", LongName: "High", Key: 0},
	{ID: "EV-PRIO-MEDIUM", LongName: "Medium", Key: 1},
	{ID: "EV-PRIO-LOW", LongName: "Low", Key: 2},
}

var statusRefs = map[model.Status]string{
	model.StatusDraft:    "EV-STATUS-DRAFT",
	model.StatusWIP:      "EV-STATUS-WIP",
	model.StatusReviewed: "EV-STATUS-REVIEWED",
	model.StatusApproved: "EV-STATUS-APPROVED",
}

var priorityRefs = map[model.Priority]string{
	model.PriorityHigh:   "EV-PRIO-HIGH",
	model.PriorityMedium: "EV-PRIO-MEDIUM",
	model.PriorityLow:    "EV-PRIO-LOW",
}

// SpecTypes returns the fixed SPEC-OBJECT-TYPE definitions in emission order.
func SpecTypes() []SpecType {
	return []SpecType{
		specTypes[model.ReqTypeFunctional],
		specTypes[model.ReqTypeInterface],
		specTypes[model.ReqTypePerformance],
	}
}

// SpecTypeFor looks up the SPEC-OBJECT-TYPE for a requirement type.
func SpecTypeFor(t model.ReqType) (SpecType, bool) {
	st, ok := specTypes[t]
	return st, ok
}

// RelationTypes returns the fixed SPEC-RELATION-TYPE definitions in
// emission order.
func RelationTypes() []RelationType {
	return []RelationType{
		relationTypes[model.RelationSatisfy],
		relationTypes[model.RelationDerive],
		relationTypes[model.RelationRefine],
	}
}

// RelationTypeFor looks up the SPEC-RELATION-TYPE for a relation kind.
func RelationTypeFor(k model.RelationKind) (RelationType, bool) {
	rt, ok := relationTypes[k]
	return rt, ok
}

// StatusValues returns the members of the status enumeration datatype.
func StatusValues() []EnumValue { return statusValues }

// PriorityValues returns the members of the priority enumeration datatype.
func PriorityValues() []EnumValue { return priorityValues }

// StatusValueRef returns the ENUM-VALUE identifier for a status.
func StatusValueRef(s model.Status) (string, bool) {
	ref, ok := statusRefs[s]
	return ref, ok
}

// PriorityValueRef returns the ENUM-VALUE identifier for a priority.
func PriorityValueRef(p model.Priority) (string, bool) {
	ref, ok := priorityRefs[p]
	return ref, ok
}
