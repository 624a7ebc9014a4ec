package models

// CustomerData is the typed core of what we know about a customer, plus an
// open-ended AdditionalInfo map for fields discovered during analysis.
type CustomerData struct {
	FullName       string         `json:"full_name"`
	DateOfBirth    string         `json:"date_of_birth,omitempty"`
	Nationality    string         `json:"nationality,omitempty"`
	Citizenship    string         `json:"citizenship,omitempty"`
	Address        string         `json:"address,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	Email          string         `json:"email,omitempty"`
	Occupation     string         `json:"occupation,omitempty"`
	Employer       string         `json:"employer,omitempty"`
	NetWorth       *float64       `json:"net_worth,omitempty"`
	SourceOfWealth string         `json:"source_of_wealth,omitempty"`
	IsPep          bool           `json:"is_pep"`
	AdditionalInfo map[string]any `json:"additional_info,omitempty"`
}

// WithExtractedData returns a copy with the extraction output merged into the
// AdditionalInfo extension map, without mutating the receiver.
func (c CustomerData) WithExtractedData(extracted map[string]any) CustomerData {
	if len(extracted) == 0 {
		return c
	}
	merged := make(map[string]any, len(c.AdditionalInfo)+1)
	for k, v := range c.AdditionalInfo {
		merged[k] = v
	}
	merged["extracted"] = extracted
	c.AdditionalInfo = merged
	return c
}
