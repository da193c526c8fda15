package statbank

// Folder is one node of the subject-folder tree.
type Folder struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Description string       `json:"description,omitempty"`
	Contents    []FolderItem `json:"folderContents"`
}

// Folder item types as reported by the API.
const (
	ItemTypeFolder = "FolderInformation"
	ItemTypeTable  = "Table"
)

// FolderItem is one entry of a folder listing: either a subfolder or a
// table reference.
type FolderItem struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Updated     string `json:"updated,omitempty"`
}

// TableSummary is one entry of the table catalog.
type TableSummary struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Description   string   `json:"description,omitempty"`
	Updated       string   `json:"updated,omitempty"`
	FirstPeriod   string   `json:"firstPeriod,omitempty"`
	LastPeriod    string   `json:"lastPeriod,omitempty"`
	SubjectCode   string   `json:"subjectCode,omitempty"`
	VariableNames []string `json:"variableNames,omitempty"`
}

// tableListing is one page of the table catalog endpoint.
type tableListing struct {
	Tables []TableSummary `json:"tables"`
	Page   pageInfo       `json:"page"`
}

type pageInfo struct {
	PageNumber    int `json:"pageNumber"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// TableMetadata describes a table's dimensions and their categories.
type TableMetadata struct {
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	Source    string     `json:"source,omitempty"`
	Updated   string     `json:"updated,omitempty"`
	Variables []Variable `json:"variables"`
}

// Variable is one dimension of a table.
type Variable struct {
	Code        string          `json:"code"`
	Label       string          `json:"label"`
	Time        bool            `json:"time,omitempty"`
	Elimination bool            `json:"elimination,omitempty"`
	Values      []VariableValue `json:"values"`
}

// VariableValue is one admissible category of a variable.
type VariableValue struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
