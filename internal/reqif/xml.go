package reqif

import "encoding/xml"

// The structs below mirror the ReqIF 1.0 element hierarchy. Field order is
// emission order; attribute values are grouped by value family (string,
// enumeration, integer), each family keeping the registry's attribute order.

type xmlDocument struct {
	XMLName   xml.Name       `xml:"REQ-IF"`
	Namespace string         `xml:"xmlns,attr"`
	Header    xmlTheHeader   `xml:"THE-HEADER"`
	Core      xmlCoreContent `xml:"CORE-CONTENT"`
	ToolExt   struct{}       `xml:"TOOL-EXTENSIONS"`
}

type xmlTheHeader struct {
	Header xmlHeader `xml:"REQ-IF-HEADER"`
}

type xmlHeader struct {
	Identifier   string `xml:"IDENTIFIER,attr"`
	CreationTime string `xml:"CREATION-TIME"`
	ToolID       string `xml:"REQ-IF-TOOL-ID"`
	Version      string `xml:"REQ-IF-VERSION"`
	SourceToolID string `xml:"SOURCE-TOOL-ID"`
	Title        string `xml:"TITLE"`
}

type xmlCoreContent struct {
	Content xmlContent `xml:"REQ-IF-CONTENT"`
}

type xmlContent struct {
	Datatypes      xmlDatatypes      `xml:"DATATYPES"`
	SpecTypes      xmlSpecTypes      `xml:"SPEC-TYPES"`
	SpecObjects    xmlSpecObjects    `xml:"SPEC-OBJECTS"`
	SpecRelations  xmlSpecRelations  `xml:"SPEC-RELATIONS"`
	Specifications xmlSpecifications `xml:"SPECIFICATIONS"`
}

type xmlDatatypes struct {
	Strings      []xmlDatatypeDef  `xml:"DATATYPE-DEFINITION-STRING"`
	Integers     []xmlDatatypeDef  `xml:"DATATYPE-DEFINITION-INTEGER"`
	Enumerations []xmlDatatypeEnum `xml:"DATATYPE-DEFINITION-ENUMERATION"`
}

type xmlDatatypeDef struct {
	Identifier string `xml:"IDENTIFIER,attr"`
	LongName   string `xml:"LONG-NAME,attr"`
}

type xmlDatatypeEnum struct {
	Identifier      string             `xml:"IDENTIFIER,attr"`
	LongName        string             `xml:"LONG-NAME,attr"`
	SpecifiedValues xmlSpecifiedValues `xml:"SPECIFIED-VALUES"`
}

type xmlSpecifiedValues struct {
	Values []xmlEnumValue `xml:"ENUM-VALUE"`
}

type xmlEnumValue struct {
	Identifier string             `xml:"IDENTIFIER,attr"`
	LongName   string             `xml:"LONG-NAME,attr"`
	Properties xmlEnumProperties  `xml:"PROPERTIES"`
}

type xmlEnumProperties struct {
	EmbeddedValue xmlEmbeddedValue `xml:"EMBEDDED-VALUE"`
}

type xmlEmbeddedValue struct {
	Key          int    `xml:"KEY,attr"`
	OtherContent string `xml:"OTHER-CONTENT,attr"`
}

type xmlSpecTypes struct {
	SpecificationType xmlSpecificationType  `xml:"SPECIFICATION-TYPE"`
	ObjectTypes       []xmlSpecObjectType   `xml:"SPEC-OBJECT-TYPE"`
	RelationTypes     []xmlSpecRelationType `xml:"SPEC-RELATION-TYPE"`
}

type xmlSpecificationType struct {
	Identifier     string            `xml:"IDENTIFIER,attr"`
	LongName       string            `xml:"LONG-NAME,attr"`
	SpecAttributes xmlSpecAttributes `xml:"SPEC-ATTRIBUTES"`
}

type xmlSpecObjectType struct {
	Identifier     string            `xml:"IDENTIFIER,attr"`
	LongName       string            `xml:"LONG-NAME,attr"`
	SpecAttributes xmlSpecAttributes `xml:"SPEC-ATTRIBUTES"`
}

type xmlSpecRelationType struct {
	Identifier string `xml:"IDENTIFIER,attr"`
	LongName   string `xml:"LONG-NAME,attr"`
}

type xmlSpecAttributes struct {
	Strings      []xmlAttrDef     `xml:"ATTRIBUTE-DEFINITION-STRING"`
	Enumerations []xmlEnumAttrDef `xml:"ATTRIBUTE-DEFINITION-ENUMERATION"`
	Integers     []xmlAttrDef     `xml:"ATTRIBUTE-DEFINITION-INTEGER"`
}

type xmlAttrDef struct {
	Identifier string     `xml:"IDENTIFIER,attr"`
	LongName   string     `xml:"LONG-NAME,attr"`
	Type       xmlTypeRef `xml:"TYPE"`
}

type xmlEnumAttrDef struct {
	Identifier  string     `xml:"IDENTIFIER,attr"`
	LongName    string     `xml:"LONG-NAME,attr"`
	MultiValued string     `xml:"MULTI-VALUED,attr"`
	Type        xmlTypeRef `xml:"TYPE"`
}

// xmlTypeRef holds exactly one datatype reference; the populated field
// selects the child element name.
type xmlTypeRef struct {
	StringRef      string `xml:"DATATYPE-DEFINITION-STRING-REF,omitempty"`
	IntegerRef     string `xml:"DATATYPE-DEFINITION-INTEGER-REF,omitempty"`
	EnumerationRef string `xml:"DATATYPE-DEFINITION-ENUMERATION-REF,omitempty"`
}

type xmlSpecObjects struct {
	Objects []xmlSpecObject `xml:"SPEC-OBJECT"`
}

type xmlSpecObject struct {
	Identifier string           `xml:"IDENTIFIER,attr"`
	LastChange string           `xml:"LAST-CHANGE,attr"`
	Type       xmlObjectTypeRef `xml:"TYPE"`
	Values     xmlValues        `xml:"VALUES"`
}

type xmlObjectTypeRef struct {
	Ref string `xml:"SPEC-OBJECT-TYPE-REF"`
}

type xmlValues struct {
	Strings      []xmlAttrValueString `xml:"ATTRIBUTE-VALUE-STRING"`
	Enumerations []xmlAttrValueEnum   `xml:"ATTRIBUTE-VALUE-ENUMERATION"`
	Integers     []xmlAttrValueInt    `xml:"ATTRIBUTE-VALUE-INTEGER"`
}

type xmlAttrValueString struct {
	TheValue   string           `xml:"THE-VALUE,attr"`
	Definition xmlDefinitionRef `xml:"DEFINITION"`
}

type xmlAttrValueInt struct {
	TheValue   int64            `xml:"THE-VALUE,attr"`
	Definition xmlDefinitionRef `xml:"DEFINITION"`
}

type xmlAttrValueEnum struct {
	Definition xmlDefinitionRef `xml:"DEFINITION"`
	Values     xmlEnumValueRefs `xml:"VALUES"`
}

type xmlEnumValueRefs struct {
	Refs []string `xml:"ENUM-VALUE-REF"`
}

// xmlDefinitionRef holds exactly one attribute definition reference; the
// populated field selects the child element name.
type xmlDefinitionRef struct {
	StringRef      string `xml:"ATTRIBUTE-DEFINITION-STRING-REF,omitempty"`
	IntegerRef     string `xml:"ATTRIBUTE-DEFINITION-INTEGER-REF,omitempty"`
	EnumerationRef string `xml:"ATTRIBUTE-DEFINITION-ENUMERATION-REF,omitempty"`
}

type xmlSpecRelations struct {
	Relations []xmlSpecRelation `xml:"SPEC-RELATION"`
}

type xmlSpecRelation struct {
	Identifier string             `xml:"IDENTIFIER,attr"`
	LastChange string             `xml:"LAST-CHANGE,attr"`
	Type       xmlRelationTypeRef `xml:"TYPE"`
	Source     xmlObjectRef       `xml:"SOURCE"`
	Target     xmlObjectRef       `xml:"TARGET"`
}

type xmlRelationTypeRef struct {
	Ref string `xml:"SPEC-RELATION-TYPE-REF"`
}

type xmlObjectRef struct {
	Ref string `xml:"SPEC-OBJECT-REF"`
}

type xmlSpecifications struct {
	Specifications []xmlSpecification `xml:"SPECIFICATION"`
}

type xmlSpecification struct {
	Identifier string                  `xml:"IDENTIFIER,attr"`
	LongName   string                  `xml:"LONG-NAME,attr"`
	LastChange string                  `xml:"LAST-CHANGE,attr"`
	Type       xmlSpecificationTypeRef `xml:"TYPE"`
	Values     xmlValues               `xml:"VALUES"`
	Children   xmlChildren             `xml:"CHILDREN"`
}

type xmlSpecificationTypeRef struct {
	Ref string `xml:"SPECIFICATION-TYPE-REF"`
}

type xmlChildren struct {
	Hierarchies []xmlSpecHierarchy `xml:"SPEC-HIERARCHY"`
}

type xmlSpecHierarchy struct {
	Identifier string       `xml:"IDENTIFIER,attr"`
	LastChange string       `xml:"LAST-CHANGE,attr"`
	Object     xmlObjectRef `xml:"OBJECT"`
}
