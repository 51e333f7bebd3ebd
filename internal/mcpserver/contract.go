package mcpserver

// ColumnContract describes the sheet layout that LLM consumers must follow
// when submitting CSV content to the conversion tools.
const ColumnContract = `# Gebo Sheet Column Contract

Tools accept CSV content: a header row naming the columns, one data row per
requirement or relation. Header names are case-insensitive; spaces and
hyphens are treated as underscores (` + "`" + `IE PUID` + "`" + ` matches ` + "`" + `ie_puid` + "`" + `).
Unrecognized columns are ignored.

## Requirements sheet

| Column       | Required | Meaning                                                          |
|--------------|----------|------------------------------------------------------------------|
| ie_puid      | yes      | Project-unique requirement id (e.g. P-1)                         |
| req_type     | yes      | One of: functional, interface, performance                       |
| foreign_id   | yes      | External/source id of the requirement                            |
| name         | yes      | Short human-readable name                                        |
| identifier   | no       | Explicit SPEC-OBJECT identifier; synthesized when absent         |
| chapter      | no       | Chapter name (ReqIF.ChapterName)                                 |
| description  | no       | Free-text description                                            |
| req_prefix   | no       | Prefix used when synthesizing identifiers (e.g. SYS -> SYS-001)  |
| text_content | no       | Full requirement text (ReqIF.Text)                               |
| status       | no       | One of: draft, wip, reviewed, approved                           |
| priority     | no       | One of: high, medium, low                                        |
| order        | no       | Integer position in the document hierarchy                       |

## Relations sheet (optional)

| Column         | Required | Meaning                                               |
|----------------|----------|-------------------------------------------------------|
| relation_type  | yes      | One of: satisfy, derive, refine                       |
| source_id      | see note | Source SPEC-OBJECT identifier                         |
| target_id      | see note | Target SPEC-OBJECT identifier                         |
| source_ie_puid | see note | Source requirement IE PUID                            |
| target_ie_puid | see note | Target requirement IE PUID                            |
| identifier     | no       | Explicit SPEC-RELATION identifier                     |

Each endpoint needs either the direct id or the IE PUID; when both are
present the direct id wins. Endpoints must resolve to requirements in the
same submission.

## Rules

1. Blank cells mean "absent"; absent optional attributes are omitted from
   the output document entirely.
2. Enumeration values (req_type, status, priority, relation_type) are
   matched case-insensitively after trimming.
3. ie_puid and identifier values must be unique across the sheet.
4. Every invalid row is reported; no document is produced while any row is
   invalid.
`
