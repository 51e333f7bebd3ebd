// Package builder turns normalized requirement and relation rows into a
// validated document graph.
//
// Validation is fail-soft: every invalid row is recorded and the full defect
// list is returned at the end, so a caller can fix a whole spreadsheet in
// one pass. The builder returns either a fully valid document or the error
// list — never a partially valid document.
package builder

import (
	"fmt"

	"github.com/starford/gebo/internal/apperr"
	"github.com/starford/gebo/internal/model"
	"github.com/starford/gebo/internal/rows"
)

// requiredReqFields are the requirement columns that must be present and
// non-blank.
var requiredReqFields = []string{"ie_puid", "req_type", "foreign_id", "name"}

// Build normalizes and validates the raw rows and assembles the document.
// Row ordinals in reported errors are 1-based positions within each sheet.
func Build(title string, reqRows, relRows []rows.Row) (*model.Document, error) {
	doc := &model.Document{Title: title}
	var defects apperr.List

	idIndex := make(map[string]struct{})   // requirement identifiers
	puidIndex := make(map[string]string)   // IE PUID -> requirement identifier
	relIndex := make(map[string]struct{})  // relation identifiers

	for i, raw := range reqRows {
		ordinal := i + 1
		fail := func(err error) {
			defects = append(defects, &apperr.RowError{
				Sheet: apperr.SheetRequirements, Row: ordinal, Err: err,
			})
		}

		nr, err := rows.NormalizeRequirement(raw)
		if err != nil {
			fail(err)
			continue
		}

		if missing := missingRequired(nr); len(missing) > 0 {
			for _, field := range missing {
				fail(&apperr.MalformedRowError{Field: field, Reason: "required column missing or blank"})
			}
			continue
		}

		req := model.Requirement{
			Identifier:  synthesizeID(nr, ordinal),
			IEPUID:      *nr.IEPUID,
			Type:        *nr.Type,
			ForeignID:   *nr.ForeignID,
			Name:        *nr.Name,
			Chapter:     nr.Chapter,
			Description: nr.Description,
			TextContent: nr.TextContent,
			Status:      nr.Status,
			Priority:    nr.Priority,
			ReqPrefix:   nr.ReqPrefix,
			Order:       nr.Order,
		}

		if _, dup := idIndex[req.Identifier]; dup {
			fail(&apperr.DuplicateKeyError{Kind: "identifier", Value: req.Identifier})
			continue
		}
		if _, dup := puidIndex[req.IEPUID]; dup {
			fail(&apperr.DuplicateKeyError{Kind: "ie_puid", Value: req.IEPUID})
			continue
		}

		idIndex[req.Identifier] = struct{}{}
		puidIndex[req.IEPUID] = req.Identifier
		doc.Requirements = append(doc.Requirements, req)
	}

	for i, raw := range relRows {
		ordinal := i + 1
		fail := func(err error) {
			defects = append(defects, &apperr.RowError{
				Sheet: apperr.SheetRelations, Row: ordinal, Err: err,
			})
		}

		nr, err := rows.NormalizeRelation(raw)
		if err != nil {
			fail(err)
			continue
		}
		if nr.Kind == nil {
			fail(&apperr.MalformedRowError{Field: "relation_type", Reason: "required column missing or blank"})
			continue
		}

		source, err := resolveEndpoint("source", nr.SourceID, nr.SourcePUID, idIndex, puidIndex)
		if err != nil {
			fail(err)
			continue
		}
		target, err := resolveEndpoint("target", nr.TargetID, nr.TargetPUID, idIndex, puidIndex)
		if err != nil {
			fail(err)
			continue
		}

		rel := model.Relation{
			Identifier: relationID(nr, ordinal),
			Kind:       *nr.Kind,
			SourceID:   source,
			TargetID:   target,
		}

		if _, dup := relIndex[rel.Identifier]; dup {
			fail(&apperr.DuplicateKeyError{Kind: "relation identifier", Value: rel.Identifier})
			continue
		}

		relIndex[rel.Identifier] = struct{}{}
		doc.Relations = append(doc.Relations, rel)
	}

	if err := defects.ErrOrNil(); err != nil {
		return nil, err
	}
	return doc, nil
}

func missingRequired(nr *rows.RequirementRow) []string {
	present := map[string]bool{
		"ie_puid":    hasValue(nr.IEPUID),
		"req_type":   nr.Type != nil,
		"foreign_id": hasValue(nr.ForeignID),
		"name":       hasValue(nr.Name),
	}
	var missing []string
	for _, field := range requiredReqFields {
		if !present[field] {
			missing = append(missing, field)
		}
	}
	return missing
}

func hasValue(s *string) bool { return s != nil && *s != "" }

// synthesizeID assigns the requirement identifier. An explicit identifier
// wins; otherwise it is derived deterministically from the row's req_prefix
// and 1-based ordinal, or from the foreign id when no prefix is given.
// Collisions with explicit identifiers surface as DuplicateKey.
func synthesizeID(nr *rows.RequirementRow, ordinal int) string {
	if hasValue(nr.Identifier) {
		return *nr.Identifier
	}
	if hasValue(nr.ReqPrefix) {
		return fmt.Sprintf("%s-%03d", *nr.ReqPrefix, ordinal)
	}
	return "SO-" + *nr.ForeignID
}

func relationID(nr *rows.RelationRow, ordinal int) string {
	if hasValue(nr.Identifier) {
		return *nr.Identifier
	}
	return fmt.Sprintf("SR-%03d", ordinal)
}

// resolveEndpoint resolves one relation endpoint to a requirement
// identifier. A direct identifier takes precedence over an IE PUID when
// both are supplied.
func resolveEndpoint(role string, directID, puid *string, idIndex map[string]struct{}, puidIndex map[string]string) (string, error) {
	if hasValue(directID) {
		if _, ok := idIndex[*directID]; ok {
			return *directID, nil
		}
		return "", &apperr.UnresolvedReferenceError{Role: role, Value: *directID}
	}
	if hasValue(puid) {
		if id, ok := puidIndex[*puid]; ok {
			return id, nil
		}
		return "", &apperr.UnresolvedReferenceError{Role: role, Value: *puid}
	}
	return "", &apperr.MalformedRowError{
		Field:  role,
		Reason: fmt.Sprintf("no %s_id or %s_ie_puid provided", role, role),
	}
}
