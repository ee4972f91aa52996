package entities

// RoleSignups lists who signed up for one role slot, in resolution order.
type RoleSignups struct {
	Emoji string
	Role  string
	Names []string
}

// SignupSummary is the read model behind /showsignups. Roles appear in the
// raid type's declared display order; Total counts distinct participants
// across every reaction, backups included.
type SignupSummary struct {
	RaidName string
	RaidType string
	Roles    []RoleSignups
	Backup   string
	Backups  []string
	Total    int
}
