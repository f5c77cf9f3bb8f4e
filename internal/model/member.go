package model

const DefaultMemberColor = "Blue"

// MemberColors is the fixed palette a roster color label must come from.
var MemberColors = []string{"Red", "Blue", "Green", "Orange", "Purple", "Yellow", "Pink", "Teal"}

type Member struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Color string `json:"color"`
}

// NormalizeMemberColor maps an absent or unknown label to DefaultMemberColor.
func NormalizeMemberColor(label string) string {
	for _, c := range MemberColors {
		if c == label {
			return c
		}
	}
	return DefaultMemberColor
}

// FindMember returns the member with the given name.
func FindMember(members []Member, name string) (Member, bool) {
	for _, m := range members {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}
