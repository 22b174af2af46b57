package structs

type System struct {
	Name       string            `json:"name"`
	Region     string            `json:"region"`
	Status     string            `json:"status"`
	Outputs    map[string]string `json:"outputs"`
	Parameters map[string]string `json:"parameters"`
}
