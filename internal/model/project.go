package model

// Project groups tasks under one timeline.
type Project struct {
	ID       string
	Name     string
	Timezone string // IANA name, e.g. "Europe/Berlin"; empty means service default
}
