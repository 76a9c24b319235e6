package ine

import "strings"

// District is one Portuguese administrative district as coded by INE.
type District struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Districts lists the 18 continental districts and the two autonomous
// regions with their INE geographic codes.
var Districts = []District{
	{Code: "01", Name: "Aveiro"},
	{Code: "02", Name: "Beja"},
	{Code: "03", Name: "Braga"},
	{Code: "04", Name: "Bragança"},
	{Code: "05", Name: "Castelo Branco"},
	{Code: "06", Name: "Coimbra"},
	{Code: "07", Name: "Évora"},
	{Code: "08", Name: "Faro"},
	{Code: "09", Name: "Guarda"},
	{Code: "10", Name: "Leiria"},
	{Code: "11", Name: "Lisboa"},
	{Code: "12", Name: "Portalegre"},
	{Code: "13", Name: "Porto"},
	{Code: "14", Name: "Santarém"},
	{Code: "15", Name: "Setúbal"},
	{Code: "16", Name: "Viana do Castelo"},
	{Code: "17", Name: "Vila Real"},
	{Code: "18", Name: "Viseu"},
	{Code: "20", Name: "Região Autónoma dos Açores"},
	{Code: "30", Name: "Região Autónoma da Madeira"},
}

func DistrictByCode(code string) *District {
	for _, d := range Districts {
		if d.Code == code {
			return &d
		}
	}
	return nil
}

// DistrictByName matches case-insensitively on a name substring.
func DistrictByName(name string) *District {
	q := strings.ToLower(name)
	for _, d := range Districts {
		if strings.Contains(strings.ToLower(d.Name), q) {
			return &d
		}
	}
	return nil
}

// LevelFromCode infers the geography level from the INE code length:
// districts use 2 digits ("11" for Lisboa), municipalities 4 ("1106"),
// parishes 6 or more ("110601").
func LevelFromCode(code string) string {
	switch {
	case len(code) <= 2:
		return "district"
	case len(code) <= 4:
		return "municipality"
	default:
		return "parish"
	}
}
