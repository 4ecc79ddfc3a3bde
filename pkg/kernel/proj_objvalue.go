package kernel

import "strings"

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return strings.TrimSpace(string(e)) == "" }

// GoogleID is the subject identifier issued by Google for a federated account.
type GoogleID string

func (g GoogleID) String() string { return string(g) }
func (g GoogleID) IsEmpty() bool  { return string(g) == "" }
