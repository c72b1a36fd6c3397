package models

// Sex defines the recorded sex of a child
type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
)

// IsValid checks if the Sex is valid
func (s Sex) IsValid() bool {
	switch s {
	case SexFemale, SexMale:
		return true
	}
	return false
}

// PregnancyStatus defines the lifecycle state of a pregnancy record
type PregnancyStatus string

const (
	PregnancyStatusActive    PregnancyStatus = "active"
	PregnancyStatusDelivered PregnancyStatus = "delivered"
	PregnancyStatusClosed    PregnancyStatus = "closed"
)

// IsValid checks if the PregnancyStatus is valid
func (s PregnancyStatus) IsValid() bool {
	switch s {
	case PregnancyStatusActive, PregnancyStatusDelivered, PregnancyStatusClosed:
		return true
	}
	return false
}
