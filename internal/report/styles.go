package report

import "consultant-gaps/internal/gaps"

type FlagStyle struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Styles maps a flag to how it is presented in the report.
type Styles map[gaps.Flag]FlagStyle

func DefaultStyles() Styles {
	return Styles{
		gaps.NoPhoto:           {Label: "No photo", Color: "#e74c3c"},
		gaps.PlaceholderPhoto:  {Label: "Placeholder photo", Color: "#e67e22"},
		gaps.NoSpecialties:     {Label: "No specialties", Color: "#9b59b6"},
		gaps.NoQualifications:  {Label: "No qualifications", Color: "#8e44ad"},
		gaps.NoGmc:             {Label: "No GMC number", Color: "#c0392b"},
		gaps.NoLanguages:       {Label: "No languages", Color: "#16a085"},
		gaps.NoHospital:        {Label: "No hospital", Color: "#2980b9"},
		gaps.NotBookable:       {Label: "Not bookable online", Color: "#d35400"},
		gaps.GenderUnspecified: {Label: "Gender unspecified", Color: "#7f8c8d"},
		gaps.NoTreatments:      {Label: "No treatments listed", Color: "#2c3e50"},
	}
}

// Get falls back to the flag name and a neutral color for flags the
// configuration does not cover.
func (s Styles) Get(flag gaps.Flag) FlagStyle {
	style, ok := s[flag]
	if !ok {
		style = FlagStyle{}
	}
	if style.Label == "" {
		style.Label = string(flag)
	}
	if style.Color == "" {
		style.Color = "#555555"
	}
	return style
}
