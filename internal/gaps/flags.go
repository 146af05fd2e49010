package gaps

import "strings"

// Flag names one gap on a consultant profile.
type Flag string

const (
	NoPhoto           Flag = "NO_PHOTO"
	PlaceholderPhoto  Flag = "PLACEHOLDER_PHOTO"
	NoSpecialties     Flag = "NO_SPECIALTIES"
	NoQualifications  Flag = "NO_QUALIFICATIONS"
	NoGmc             Flag = "NO_GMC"
	NoLanguages       Flag = "NO_LANGUAGES"
	NoHospital        Flag = "NO_HOSPITAL"
	NotBookable       Flag = "NOT_BOOKABLE"
	GenderUnspecified Flag = "GENDER_UNSPECIFIED"
	NoTreatments      Flag = "NO_TREATMENTS"
)

// AllFlags is every flag in evaluation order, which is also the column
// order of the boolean columns in the gap CSV.
var AllFlags = []Flag{
	NoPhoto,
	PlaceholderPhoto,
	NoSpecialties,
	NoQualifications,
	NoGmc,
	NoLanguages,
	NoHospital,
	NotBookable,
	GenderUnspecified,
	NoTreatments,
}

// Column is the lower-case key used in CSV headers, summary counts and the
// embedded report data, ex. NO_GMC -> no_gmc.
func (f Flag) Column() string {
	return strings.ToLower(string(f))
}

// FlagSet is an ordered set of flags.
type FlagSet []Flag

func (s FlagSet) Has(flag Flag) bool {
	for _, f := range s {
		if f == flag {
			return true
		}
	}
	return false
}

func (s FlagSet) String() string {
	parts := make([]string, len(s))
	for i, f := range s {
		parts[i] = string(f)
	}
	return strings.Join(parts, ";")
}
