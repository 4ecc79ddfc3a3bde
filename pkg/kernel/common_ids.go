package kernel

import "strconv"

// UserID is the numeric primary key of a user.
type UserID int64

func NewUserID(id int64) UserID { return UserID(id) }
func (u UserID) String() string { return strconv.FormatInt(int64(u), 10) }
func (u UserID) IsEmpty() bool  { return u == 0 }

// ParseUserID parses the decimal form produced by UserID.String.
func ParseUserID(s string) (UserID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return UserID(id), nil
}
