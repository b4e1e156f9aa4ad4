package domain

// DetailedLocation is the administrative breakdown used by location filters.
type DetailedLocation struct {
	Province string `json:"province"`
	District string `json:"district"`
	City     string `json:"city"`
}

// Worker is a service professional listed in the marketplace.
type Worker struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ProfileImage     string           `json:"profileImage,omitempty"`
	Category         string           `json:"category"`
	Rating           float64          `json:"rating"`
	ReviewCount      int              `json:"reviewCount"`
	HourlyRate       float64          `json:"hourlyRate"`
	Location         string           `json:"location"`
	Distance         *float64         `json:"distance,omitempty"`
	DetailedLocation DetailedLocation `json:"detailedLocation"`
	Skills           []string         `json:"skills"`
	IsAvailable      bool             `json:"isAvailable"`
	IsVerified       bool             `json:"isVerified"`
	CompletedJobs    int              `json:"completedJobs"`
	ResponseTime     string           `json:"responseTime"`
	Description      string           `json:"description,omitempty"`
}

// DistanceOrZero treats an unknown distance as zero.
func (w Worker) DistanceOrZero() float64 {
	if w.Distance == nil {
		return 0
	}
	return *w.Distance
}

type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	WorkerCount int     `json:"workerCount"`
	AverageRate float64 `json:"averageRate"`
}

type SubCategory struct {
	ID       string `json:"id"`
	ParentID string `json:"parentId"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
}
