package plan

// File mirrors the YAML plan document. Dates stay as strings here and
// are parsed during materialization so every supported layout shares
// one format list.
type File struct {
	Project   ProjectDoc    `yaml:"project"`
	Tasks     []TaskDoc     `yaml:"tasks"`
	Vacations []VacationDoc `yaml:"vacations"`
}

// ProjectDoc is the project header of a plan file.
type ProjectDoc struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"`
}

// TaskDoc is a single task entry of a plan file.
type TaskDoc struct {
	ID             string     `yaml:"id"`
	Name           string     `yaml:"name"`
	Assignee       string     `yaml:"assignee"`
	Start          string     `yaml:"start"`
	End            string     `yaml:"end"`
	EstimatedHours float64    `yaml:"estimated_hours"`
	Status         string     `yaml:"status"`
	Color          string     `yaml:"color"`
	Entries        []EntryDoc `yaml:"entries"`
}

// EntryDoc is a logged-time entry attached to a task.
type EntryDoc struct {
	Date  string  `yaml:"date"`
	Hours float64 `yaml:"hours"`
	User  string  `yaml:"user"`
}

// VacationDoc is an absence range of a plan file.
type VacationDoc struct {
	User   string `yaml:"user"`
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
	Status string `yaml:"status"`
}
