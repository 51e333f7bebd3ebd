// Package reqif serializes a validated document into ReqIF 1.0 XML.
//
// The serializer walks the document and the type registry and emits the
// header, DATATYPES, SPEC-TYPES, SPEC-OBJECTS, SPEC-RELATIONS and
// SPECIFICATIONS sections. It fails only on internal invariant violations;
// every user-input defect must already have been rejected by the builder.
package reqif

import (
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"github.com/starford/gebo/internal/apperr"
	"github.com/starford/gebo/internal/model"
	"github.com/starford/gebo/internal/registry"
)

const (
	// Namespace is the OMG ReqIF 1.0 schema namespace.
	Namespace = "http://www.omg.org/spec/ReqIF/20110401/reqif.xsd"
	// Version is the ReqIF specification version emitted in the header.
	Version = "1.0"

	moduleID   = "SRS-001"
	timeLayout = "2006-01-02T15:04:05Z"
)

// Options carries the document metadata the caller injects. CreationTime is
// mandatory so that converting the same input twice yields byte-identical
// output; the serializer never consults the wall clock itself.
type Options struct {
	ToolID       string
	SourceToolID string
	CreationTime time.Time
}

// Marshal emits the document as UTF-8 ReqIF XML.
func Marshal(doc *model.Document, opts Options) ([]byte, error) {
	if opts.CreationTime.IsZero() {
		return nil, &apperr.SerializationError{Reason: "creation time not set"}
	}
	ts := opts.CreationTime.UTC().Format(timeLayout)

	objects, err := buildSpecObjects(doc, ts)
	if err != nil {
		return nil, err
	}
	relations, err := buildSpecRelations(doc, ts)
	if err != nil {
		return nil, err
	}

	root := xmlDocument{
		Namespace: Namespace,
		Header: xmlTheHeader{Header: xmlHeader{
			Identifier:   registry.HeaderID,
			CreationTime: ts,
			ToolID:       opts.ToolID,
			Version:      Version,
			SourceToolID: opts.SourceToolID,
			Title:        doc.Title,
		}},
		Core: xmlCoreContent{Content: xmlContent{
			Datatypes:      buildDatatypes(),
			SpecTypes:      buildSpecTypes(),
			SpecObjects:    xmlSpecObjects{Objects: objects},
			SpecRelations:  xmlSpecRelations{Relations: relations},
			Specifications: xmlSpecifications{Specifications: []xmlSpecification{buildSpecification(doc, ts)}},
		}},
	}

	body, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, &apperr.SerializationError{Reason: err.Error()}
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

func buildDatatypes() xmlDatatypes {
	return xmlDatatypes{
		Strings: []xmlDatatypeDef{
			{Identifier: registry.DatatypeString, LongName: "String"},
		},
		Integers: []xmlDatatypeDef{
			{Identifier: registry.DatatypeInteger, LongName: "Integer"},
		},
		Enumerations: []xmlDatatypeEnum{
			{
				Identifier:      registry.DatatypeStatus,
				LongName:        "Status",
				SpecifiedValues: xmlSpecifiedValues{Values: enumValues(registry.StatusValues())},
			},
			{
				Identifier:      registry.DatatypePriority,
				LongName:        "Priority",
				SpecifiedValues: xmlSpecifiedValues{Values: enumValues(registry.PriorityValues())},
			},
		},
	}
}

func enumValues(vals []registry.EnumValue) []xmlEnumValue {
	out := make([]xmlEnumValue, 0, len(vals))
	for _, v := range vals {
		out = append(out, xmlEnumValue{
			Identifier: v.ID,
			LongName:   v.LongName,
			Properties: xmlEnumProperties{EmbeddedValue: xmlEmbeddedValue{
				Key:          v.Key,
				OtherContent: v.LongName,
			}},
		})
	}
	return out
}

func buildSpecTypes() xmlSpecTypes {
	st := xmlSpecTypes{
		SpecificationType: xmlSpecificationType{
			Identifier: registry.SpecificationTypeID,
			LongName:   "Stakeholder Requirements",
			SpecAttributes: xmlSpecAttributes{
				Strings: []xmlAttrDef{
					{
						Identifier: registry.AttrModuleID,
						LongName:   "ID",
						Type:       xmlTypeRef{StringRef: registry.DatatypeString},
					},
					{
						Identifier: registry.AttrModuleDesc,
						LongName:   "Description",
						Type:       xmlTypeRef{StringRef: registry.DatatypeString},
					},
				},
			},
		},
	}

	for _, t := range registry.SpecTypes() {
		ot := xmlSpecObjectType{Identifier: t.ID, LongName: t.LongName}
		for _, a := range t.Attributes {
			switch a.Kind {
			case registry.AttrString:
				ot.SpecAttributes.Strings = append(ot.SpecAttributes.Strings, xmlAttrDef{
					Identifier: a.ID,
					LongName:   a.LongName,
					Type:       xmlTypeRef{StringRef: a.DatatypeRef},
				})
			case registry.AttrEnumeration:
				ot.SpecAttributes.Enumerations = append(ot.SpecAttributes.Enumerations, xmlEnumAttrDef{
					Identifier:  a.ID,
					LongName:    a.LongName,
					MultiValued: "false",
					Type:        xmlTypeRef{EnumerationRef: a.DatatypeRef},
				})
			case registry.AttrInteger:
				ot.SpecAttributes.Integers = append(ot.SpecAttributes.Integers, xmlAttrDef{
					Identifier: a.ID,
					LongName:   a.LongName,
					Type:       xmlTypeRef{IntegerRef: a.DatatypeRef},
				})
			}
		}
		st.ObjectTypes = append(st.ObjectTypes, ot)
	}

	for _, rt := range registry.RelationTypes() {
		st.RelationTypes = append(st.RelationTypes, xmlSpecRelationType{
			Identifier: rt.ID,
			LongName:   rt.LongName,
		})
	}
	return st
}

func buildSpecObjects(doc *model.Document, ts string) ([]xmlSpecObject, error) {
	objects := make([]xmlSpecObject, 0, len(doc.Requirements))
	for i := range doc.Requirements {
		req := &doc.Requirements[i]
		st, ok := registry.SpecTypeFor(req.Type)
		if !ok {
			return nil, &apperr.SerializationError{
				Reason: fmt.Sprintf("requirement %s: no spec type for %q", req.Identifier, req.Type),
			}
		}
		values, err := buildValues(req, st)
		if err != nil {
			return nil, err
		}
		objects = append(objects, xmlSpecObject{
			Identifier: req.Identifier,
			LastChange: ts,
			Type:       xmlObjectTypeRef{Ref: st.ID},
			Values:     values,
		})
	}
	return objects, nil
}

// buildValues emits one attribute value per populated field, in the
// registry's attribute order within each value family. Absent optional
// fields produce no value at all; blank strings are emitted as empty
// attribute values.
func buildValues(req *model.Requirement, st registry.SpecType) (xmlValues, error) {
	var values xmlValues

	addString := func(field, value string) {
		a, _ := st.AttrByField(field)
		values.Strings = append(values.Strings, xmlAttrValueString{
			TheValue:   value,
			Definition: xmlDefinitionRef{StringRef: a.ID},
		})
	}
	addOptString := func(field string, value *string) {
		if value != nil {
			addString(field, *value)
		}
	}

	addString("foreign_id", req.ForeignID)
	addString("name", req.Name)
	addString("ie_puid", req.IEPUID)
	addOptString("chapter", req.Chapter)
	addOptString("description", req.Description)
	addOptString("req_prefix", req.ReqPrefix)
	addOptString("text_content", req.TextContent)

	if req.Status != nil {
		ref, ok := registry.StatusValueRef(*req.Status)
		if !ok {
			return xmlValues{}, &apperr.SerializationError{
				Reason: fmt.Sprintf("requirement %s: no enum value for status %q", req.Identifier, *req.Status),
			}
		}
		a, _ := st.AttrByField("status")
		values.Enumerations = append(values.Enumerations, xmlAttrValueEnum{
			Definition: xmlDefinitionRef{EnumerationRef: a.ID},
			Values:     xmlEnumValueRefs{Refs: []string{ref}},
		})
	}
	if req.Priority != nil {
		ref, ok := registry.PriorityValueRef(*req.Priority)
		if !ok {
			return xmlValues{}, &apperr.SerializationError{
				Reason: fmt.Sprintf("requirement %s: no enum value for priority %q", req.Identifier, *req.Priority),
			}
		}
		a, _ := st.AttrByField("priority")
		values.Enumerations = append(values.Enumerations, xmlAttrValueEnum{
			Definition: xmlDefinitionRef{EnumerationRef: a.ID},
			Values:     xmlEnumValueRefs{Refs: []string{ref}},
		})
	}
	if req.Order != nil {
		a, _ := st.AttrByField("order")
		values.Integers = append(values.Integers, xmlAttrValueInt{
			TheValue:   *req.Order,
			Definition: xmlDefinitionRef{IntegerRef: a.ID},
		})
	}
	return values, nil
}

func buildSpecRelations(doc *model.Document, ts string) ([]xmlSpecRelation, error) {
	relations := make([]xmlSpecRelation, 0, len(doc.Relations))
	for _, rel := range doc.Relations {
		rt, ok := registry.RelationTypeFor(rel.Kind)
		if !ok {
			return nil, &apperr.SerializationError{
				Reason: fmt.Sprintf("relation %s: no relation type for %q", rel.Identifier, rel.Kind),
			}
		}
		for _, endpoint := range []string{rel.SourceID, rel.TargetID} {
			if _, ok := doc.RequirementByID(endpoint); !ok {
				return nil, &apperr.SerializationError{
					Reason: fmt.Sprintf("relation %s: dangling reference %q", rel.Identifier, endpoint),
				}
			}
		}
		relations = append(relations, xmlSpecRelation{
			Identifier: rel.Identifier,
			LastChange: ts,
			Type:       xmlRelationTypeRef{Ref: rt.ID},
			Source:     xmlObjectRef{Ref: rel.SourceID},
			Target:     xmlObjectRef{Ref: rel.TargetID},
		})
	}
	return relations, nil
}

// buildSpecification emits the hierarchy root. Children follow the order
// field when present; rows without an order keep their input position after
// the ordered ones. The sort is stable so equal orders preserve input order.
func buildSpecification(doc *model.Document, ts string) xmlSpecification {
	indices := make([]int, len(doc.Requirements))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		oa, ob := doc.Requirements[indices[a]].Order, doc.Requirements[indices[b]].Order
		switch {
		case oa != nil && ob != nil:
			return *oa < *ob
		case oa != nil:
			return true
		default:
			return false
		}
	})

	children := make([]xmlSpecHierarchy, 0, len(indices))
	for n, idx := range indices {
		children = append(children, xmlSpecHierarchy{
			Identifier: fmt.Sprintf("SH-%03d", n+1),
			LastChange: ts,
			Object:     xmlObjectRef{Ref: doc.Requirements[idx].Identifier},
		})
	}

	return xmlSpecification{
		Identifier: registry.SpecificationID,
		LongName:   doc.Title,
		LastChange: ts,
		Type:       xmlSpecificationTypeRef{Ref: registry.SpecificationTypeID},
		Values: xmlValues{
			Strings: []xmlAttrValueString{
				{
					TheValue:   moduleID,
					Definition: xmlDefinitionRef{StringRef: registry.AttrModuleID},
				},
				{
					TheValue:   fmt.Sprintf("This module contains system-level requirements for %s.", doc.Title),
					Definition: xmlDefinitionRef{StringRef: registry.AttrModuleDesc},
				},
			},
		},
		Children: xmlChildren{Hierarchies: children},
	}
}
