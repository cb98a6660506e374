package auth

// StudentIdentity is the part of a student record carried in the session
type StudentIdentity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	RollNo string `json:"rollNo"`
}

// Identity describes who issued a request. It is built once per request and
// has no mutators; logging in or out produces a new session instead.
type Identity struct {
	admin   bool
	student *StudentIdentity
}

// Anonymous is the identity of a request without a valid session
func Anonymous() Identity {
	return Identity{}
}

// NewIdentity builds an identity, copying the student so callers cannot alter it later
func NewIdentity(admin bool, student *StudentIdentity) Identity {
	id := Identity{admin: admin}
	if student != nil {
		s := *student
		id.student = &s
	}
	return id
}

// IsAdmin reports whether the request carries the shared admin flag
func (i Identity) IsAdmin() bool {
	return i.admin
}

// Student returns the logged in student, if any
func (i Identity) Student() (StudentIdentity, bool) {
	if i.student == nil {
		return StudentIdentity{}, false
	}
	return *i.student, true
}

// WithAdmin returns a copy of the identity with the admin flag set to admin
func (i Identity) WithAdmin(admin bool) Identity {
	return NewIdentity(admin, i.student)
}

// WithStudent returns a copy of the identity for student (nil logs the student out)
func (i Identity) WithStudent(student *StudentIdentity) Identity {
	return NewIdentity(i.admin, student)
}

// IsAnonymous reports whether the identity carries neither admin nor student
func (i Identity) IsAnonymous() bool {
	return !i.admin && i.student == nil
}
