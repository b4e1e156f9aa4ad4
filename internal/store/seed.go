package store

import "ondemand-engine/internal/domain"

func f64(v float64) *float64 { return &v }

var seedCategories = []domain.Category{
	{ID: "cleaning", Name: "Cleaning", Icon: "🧹", Color: "#10B981", WorkerCount: 245},
	{ID: "plumbing", Name: "Plumbing", Icon: "🔧", Color: "#3B82F6", WorkerCount: 189},
	{ID: "electrical", Name: "Electrical", Icon: "⚡", Color: "#F59E0B", WorkerCount: 156},
	{ID: "carpentry", Name: "Carpentry", Icon: "🔨", Color: "#8B5CF6", WorkerCount: 123},
	{ID: "painting", Name: "Painting", Icon: "🎨", Color: "#EF4444", WorkerCount: 201},
	{ID: "gardening", Name: "Gardening", Icon: "🌱", Color: "#059669", WorkerCount: 178},
	{ID: "appliance", Name: "Appliance Repair", Icon: "📱", Color: "#6B7280", WorkerCount: 145},
	{ID: "moving", Name: "Moving & Packing", Icon: "📦", Color: "#F97316", WorkerCount: 98},
}

var seedSubCategories = []domain.SubCategory{
	{ParentID: "cleaning", ID: "home-cleaning", Name: "Home Cleaning", Icon: "🧽"},
	{ParentID: "cleaning", ID: "office-cleaning", Name: "Office Cleaning", Icon: "🏢"},
	{ParentID: "cleaning", ID: "carpet", Name: "Carpet", Icon: "🧼"},
	{ParentID: "cleaning", ID: "window", Name: "Window", Icon: "🪟"},
	{ParentID: "cleaning", ID: "deep", Name: "Deep Clean", Icon: "🧴"},
	{ParentID: "cleaning", ID: "after-party", Name: "After Party", Icon: "🎉"},
	{ParentID: "plumbing", ID: "emergency", Name: "Emergency", Icon: "🚰"},
	{ParentID: "plumbing", ID: "installation", Name: "Installation", Icon: "🔩"},
	{ParentID: "plumbing", ID: "maintenance", Name: "Maintenance", Icon: "🧰"},
	{ParentID: "plumbing", ID: "water-tank", Name: "Water Tank", Icon: "🛢️"},
	{ParentID: "electrical", ID: "wiring", Name: "Wiring", Icon: "🔌"},
	{ParentID: "electrical", ID: "lighting", Name: "Lighting", Icon: "💡"},
	{ParentID: "electrical", ID: "inspection", Name: "Inspection", Icon: "🧯"},
	{ParentID: "electrical", ID: "smart-home", Name: "Smart Home", Icon: "🏠"},
	{ParentID: "carpentry", ID: "furniture", Name: "Furniture", Icon: "🪑"},
	{ParentID: "carpentry", ID: "cabinet", Name: "Cabinets", Icon: "📦"},
	{ParentID: "carpentry", ID: "repair", Name: "Repair", Icon: "🧱"},
	{ParentID: "painting", ID: "interior", Name: "Interior", Icon: "🏠"},
	{ParentID: "painting", ID: "exterior", Name: "Exterior", Icon: "🏢"},
	{ParentID: "painting", ID: "decor", Name: "Decorative", Icon: "🖌️"},
	{ParentID: "gardening", ID: "landscaping", Name: "Landscaping", Icon: "🏞️"},
	{ParentID: "gardening", ID: "pruning", Name: "Pruning", Icon: "✂️"},
	{ParentID: "gardening", ID: "design", Name: "Garden Design", Icon: "🌿"},
	{ParentID: "appliance", ID: "ac", Name: "AC Repair", Icon: "❄️"},
	{ParentID: "appliance", ID: "fridge", Name: "Refrigerator", Icon: "🧊"},
	{ParentID: "appliance", ID: "washer", Name: "Washer", Icon: "🧺"},
	{ParentID: "moving", ID: "house", Name: "House Move", Icon: "🏠"},
	{ParentID: "moving", ID: "office", Name: "Office Move", Icon: "🏢"},
	{ParentID: "moving", ID: "packing", Name: "Packing", Icon: "📦"},
}

var seedWorkers = []domain.Worker{
	{
		ID: "1", Name: "John Smith", Category: "plumbing",
		Rating: 4.8, ReviewCount: 127, HourlyRate: 45,
		Location: "Downtown", Distance: f64(2.3),
		DetailedLocation: domain.DetailedLocation{Province: "Western", District: "Colombo", City: "Colombo"},
		Skills: []string{"Emergency Repairs", "Installation", "Maintenance"}, CompletedJobs: 234,
		IsAvailable: true, IsVerified: true, ResponseTime: "15 min",
		Description: "Professional plumber with 8+ years experience",
	},
	{
		ID: "2", Name: "Sarah Johnson", Category: "cleaning",
		Rating: 4.9, ReviewCount: 203, HourlyRate: 25,
		Location: "Midtown", Distance: f64(1.8),
		DetailedLocation: domain.DetailedLocation{Province: "Western", District: "Colombo", City: "Dehiwala"},
		Skills: []string{"Deep Cleaning", "Regular Maintenance", "Eco-Friendly"}, CompletedJobs: 456,
		IsAvailable: true, IsVerified: true, ResponseTime: "10 min",
		Description: "Reliable cleaning service with attention to detail",
	},
	{
		ID: "3", Name: "Mike Wilson", Category: "electrical",
		Rating: 4.7, ReviewCount: 89, HourlyRate: 55,
		Location: "Uptown", Distance: f64(3.1),
		DetailedLocation: domain.DetailedLocation{Province: "Western", District: "Gampaha", City: "Negombo"},
		Skills: []string{"Wiring", "Smart Home", "Safety Inspection"}, CompletedJobs: 178,
		IsAvailable: false, IsVerified: true, ResponseTime: "30 min",
		Description: "Licensed electrician specializing in modern solutions",
	},
	{
		ID: "4", Name: "Nimal Perera", Category: "carpentry",
		Rating: 4.5, ReviewCount: 64, HourlyRate: 35,
		Location: "Lakeside",
		DetailedLocation: domain.DetailedLocation{Province: "Central", District: "Kandy", City: "Peradeniya"},
		Skills: []string{"Furniture", "Cabinets", "Repairs"}, CompletedJobs: 97,
		IsAvailable: true, IsVerified: false, ResponseTime: "1 hour",
		Description: "Custom furniture and cabinet work",
	},
	{
		ID: "5", Name: "Emma Brown", Category: "painting",
		Rating: 4.2, ReviewCount: 41, HourlyRate: 30,
		Location: "Harbor", Distance: f64(5.4),
		DetailedLocation: domain.DetailedLocation{Province: "Southern", District: "Galle", City: "Unawatuna"},
		Skills: []string{"Interior", "Exterior", "Wallpaper"}, CompletedJobs: 66,
		IsAvailable: true, IsVerified: true, ResponseTime: "45 min",
		Description: "Interior and exterior painting, neat finish",
	},
	{
		ID: "6", Name: "Kasun Silva", Category: "gardening",
		Rating: 4.0, ReviewCount: 22, HourlyRate: 20,
		Location: "Hillside", Distance: f64(7.9),
		DetailedLocation: domain.DetailedLocation{Province: "Central", District: "Nuwara Eliya", City: "Hatton"},
		Skills: []string{"Landscaping", "Pruning", "Lawn Care"}, CompletedJobs: 31,
		IsAvailable: false, IsVerified: false, ResponseTime: "2 hours",
		Description: "Garden upkeep and small landscaping projects",
	},
}

var seedJobs = []domain.Job{
	{ID: "1", Title: "Kitchen Plumbing Repair", Category: "Plumbing", Status: domain.JobInProgress, Budget: 150, Applicants: 5, PostedDate: "2 days ago", WorkerName: "John Smith"},
	{ID: "2", Title: "House Deep Cleaning", Category: "Cleaning", Status: domain.JobCompleted, Budget: 80, Applicants: 12, PostedDate: "1 week ago", WorkerName: "Sarah Johnson"},
	{ID: "3", Title: "Electrical Wiring Installation", Category: "Electrical", Status: domain.JobPosted, Budget: 300, Applicants: 3, PostedDate: "1 day ago"},
}
