package matching

import "testing"

func TestEducationScore(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
		required  string
		want      float64
	}{
		{"no requirement", "Bachelor", "", 1},
		{"containment match", "Bachelor of Computer Science", "Bachelor", 1},
		{"candidate above ladder", "Master of Engineering", "Bachelor", 1},
		{"candidate below ladder", "Associate Degree", "Bachelor", 0.5},
		{"high school vs master", "High School Diploma", "Master", 0},
		{"unresolvable candidate", "Bootcamp Certificate", "Bachelor", 0},
		{"unresolvable requirement", "Bachelor", "Certification", 0},
		{"case insensitive", "bachelor of arts", "BACHELOR", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := educationScore(tc.candidate, tc.required); !almostEqual(got, tc.want) {
				t.Fatalf("educationScore(%q, %q) = %v, want %v", tc.candidate, tc.required, got, tc.want)
			}
		})
	}
}

func TestExperienceScore(t *testing.T) {
	cases := []struct {
		name      string
		candidate float64
		required  float64
		want      float64
	}{
		{"no requirement", 0, 0, 1},
		{"meets requirement", 3, 2, 1},
		{"exactly meets", 2, 2, 1},
		{"half of requirement", 1, 2, 0.5},
		{"no experience", 0, 2, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := experienceScore(tc.candidate, tc.required); !almostEqual(got, tc.want) {
				t.Fatalf("experienceScore(%v, %v) = %v, want %v", tc.candidate, tc.required, got, tc.want)
			}
		})
	}
}

func TestLocationScore(t *testing.T) {
	cases := []struct {
		name    string
		cand    CandidateProfile
		listing ListingProfile
		want    float64
	}{
		{"both remote", CandidateProfile{RemoteOK: true}, ListingProfile{Remote: true}, 1},
		{"preference contained", CandidateProfile{LocationPreference: "Jakarta"}, ListingProfile{Location: "Jakarta Selatan"}, 1},
		{"no preference is neutral", CandidateProfile{}, ListingProfile{Location: "Bandung"}, 0.5},
		{"mismatch", CandidateProfile{LocationPreference: "Surabaya"}, ListingProfile{Location: "Jakarta"}, 0},
		{"remote ok but onsite listing mismatch", CandidateProfile{RemoteOK: true, LocationPreference: "Surabaya"}, ListingProfile{Location: "Jakarta"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := locationScore(tc.cand, tc.listing); !almostEqual(got, tc.want) {
				t.Fatalf("locationScore = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCompensationScore(t *testing.T) {
	cases := []struct {
		name    string
		minimum float64
		offered float64
		want    float64
	}{
		{"no preference", 0, 500, 1},
		{"no preference zero offer", 0, 0, 1},
		{"offer meets minimum", 1000, 1500, 1},
		{"offer below minimum", 1000, 500, 0.5},
		{"zero offer with minimum", 1000, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := compensationScore(tc.minimum, tc.offered); !almostEqual(got, tc.want) {
				t.Fatalf("compensationScore(%v, %v) = %v, want %v", tc.minimum, tc.offered, got, tc.want)
			}
		})
	}
}
