package search

import (
	"encoding/json"
	"reflect"
	"testing"

	"ondemand-engine/internal/domain"
)

func ptr(f float64) *float64 { return &f }

func fixture() []domain.Worker {
	return []domain.Worker{
		{
			ID: "1", Name: "John Smith", Category: "plumbing", Rating: 4.8, HourlyRate: 45,
			Distance: ptr(2.3), Skills: []string{"Pipe Repair", "Drain Cleaning"},
			DetailedLocation: domain.DetailedLocation{Province: "Western", District: "Colombo", City: "Dehiwala"},
			IsAvailable: true, IsVerified: true, Description: "Licensed plumber",
		},
		{
			ID: "2", Name: "Sarah Johnson", Category: "cleaning", Rating: 4.9, HourlyRate: 25,
			Distance: ptr(1.8), Skills: []string{"Deep Cleaning"},
			DetailedLocation: domain.DetailedLocation{Province: "Western", District: "Gampaha", City: "Negombo"},
			IsAvailable: true, IsVerified: true,
		},
		{
			ID: "3", Name: "Mike Wilson", Category: "electrical", Rating: 4.7, HourlyRate: 55,
			Distance: ptr(3.1), Skills: []string{"Wiring"},
			DetailedLocation: domain.DetailedLocation{Province: "Central", District: "Kandy", City: "Peradeniya"},
			IsAvailable: false, IsVerified: true, Description: "Emergency callouts",
		},
		{
			ID: "4", Name: "Ana Perera", Category: "cleaning", Rating: 4.9, HourlyRate: 30,
			Skills: []string{"Window Cleaning"}, IsAvailable: true,
			DetailedLocation: domain.DetailedLocation{Province: "Western", District: "Colombo", City: "Nugegoda"},
		},
	}
}

func ids(ws []domain.Worker) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.ID
	}
	return out
}

func TestQuery(t *testing.T) {
	ws := fixture()
	cases := []struct {
		q    string
		want []string
	}{
		{"", []string{"1", "2", "3", "4"}},
		{"   ", []string{"1", "2", "3", "4"}},
		{"JOHN", []string{"1", "2"}},
		{"clean", []string{"1", "2", "4"}},
		{"emergency", []string{"3"}},
		{"roofing", []string{}},
	}
	for _, tc := range cases {
		if got := ids(Query(ws, tc.q)); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Query(%q) = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestFilters(t *testing.T) {
	ws := fixture()
	cases := []struct {
		name string
		f    Filters
		want []string
	}{
		{"none", Filters{}, []string{"1", "2", "3", "4"}},
		{"province substring", Filters{Province: "west"}, []string{"1", "2", "4"}},
		{"district and city", Filters{District: "colombo", City: "nuge"}, []string{"4"}},
		{"category exact", Filters{Category: "cleaning"}, []string{"2", "4"}},
		{"category not fuzzy", Filters{Category: "clean"}, []string{}},
		{"min rating", Filters{MinRating: 4.8}, []string{"1", "2", "4"}},
		{"under 25 inclusive", Filters{Price: PriceUnder25}, []string{"2"}},
		{"under 50", Filters{Price: PriceUnder50}, []string{"1", "2", "4"}},
		{"50 plus", Filters{Price: PriceOver50}, []string{"3"}},
		{"available", Filters{AvailableOnly: true}, []string{"1", "2", "4"}},
		{"verified", Filters{VerifiedOnly: true}, []string{"1", "2", "3"}},
		{"combined", Filters{Province: "Western", Price: PriceUnder35, VerifiedOnly: true}, []string{"2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ids(Filter(ws, tc.f)); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSortTotalOrderWithoutMutation(t *testing.T) {
	ws := fixture()
	before := ids(ws)

	cases := []struct {
		key  SortKey
		want []string
	}{
		{SortRating, []string{"2", "4", "1", "3"}},
		{SortPrice, []string{"2", "4", "1", "3"}},
		{SortDistance, []string{"4", "2", "1", "3"}},
		{SortNone, []string{"1", "2", "3", "4"}},
	}
	for _, tc := range cases {
		if got := ids(Sort(ws, tc.key)); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Sort(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
	if !reflect.DeepEqual(ids(ws), before) {
		t.Fatalf("input reordered: %v", ids(ws))
	}
}

func TestApply(t *testing.T) {
	got := Apply(fixture(), Request{
		Query:   "clean",
		Filters: Filters{AvailableOnly: true},
		Sort:    SortPrice,
	})
	if want := []string{"2", "4", "1"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
}

func TestActiveCountAndClear(t *testing.T) {
	f := Filters{Province: "Western", City: "Negombo", MinRating: 4.5, Price: PriceOver50, VerifiedOnly: true}
	if f.ActiveCount() != 5 {
		t.Fatalf("ActiveCount = %d", f.ActiveCount())
	}
	if c := f.Clear(); c.ActiveCount() != 0 || c != (Filters{}) {
		t.Fatalf("Clear = %+v", c)
	}
}

func TestPriceBandText(t *testing.T) {
	for _, b := range PriceBands() {
		got, err := ParsePriceBand(b.String())
		if err != nil || got != b {
			t.Errorf("ParsePriceBand(%q) = %v, %v", b.String(), got, err)
		}
		if b.Label() == "" {
			t.Errorf("band %v has no label", b)
		}
	}
	if _, err := ParsePriceBand("cheap"); err == nil {
		t.Fatal("expected error for unknown band")
	}

	var f Filters
	if err := json.Unmarshal([]byte(`{"price":"50plus","minRating":4.5}`), &f); err != nil {
		t.Fatal(err)
	}
	if f.Price != PriceOver50 || f.MinRating != 4.5 {
		t.Fatalf("decoded %+v", f)
	}
}

func TestParseSortKey(t *testing.T) {
	if k, err := ParseSortKey(" Rating "); err != nil || k != SortRating {
		t.Fatalf("got %q, %v", k, err)
	}
	if _, err := ParseSortKey("newest"); err == nil {
		t.Fatal("expected error")
	}
}

func TestInstantFindToggle(t *testing.T) {
	ws := fixture()
	var f InstantFind

	f.Toggle("Cleaning")
	if got := ids(f.Results(ws)); !reflect.DeepEqual(got, []string{"2", "4"}) {
		t.Fatalf("category results = %v", got)
	}

	f.Toggle("cleaning")
	if f.Category != "" {
		t.Fatalf("second toggle kept %q", f.Category)
	}

	f.Query = "wiring"
	if got := ids(f.Results(ws)); !reflect.DeepEqual(got, []string{"3"}) {
		t.Fatalf("query results = %v", got)
	}
}

func TestRatingOptions(t *testing.T) {
	want := []float64{0, 4.0, 4.2, 4.5, 4.7, 4.8}
	if got := RatingOptions(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}
}
