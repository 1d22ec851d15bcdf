package standing

// Location is a team's row together with the table it was found in.
type Location struct {
	Row        Row    `json:"row"`
	GroupIndex int    `json:"groupIndex"`
	GroupName  string `json:"groupName"`
	MultiGroup bool   `json:"multiGroup"`
	Table      Table  `json:"-"`
}

// Locate scans groups in order and returns the first row of teamID. The bool
// is false when the team is not in the table, which is a normal outcome.
func Locate(table Table, teamID int64) (Location, bool) {
	for gi, group := range table.Groups {
		for _, row := range group {
			if row.Team.ID == teamID {
				return Location{
					Row:        row,
					GroupIndex: gi,
					GroupName:  table.GroupName(gi),
					MultiGroup: table.MultiGroup(),
					Table:      table,
				}, true
			}
		}
	}
	return Location{MultiGroup: table.MultiGroup(), Table: table, GroupIndex: -1}, false
}
