package application

// Seed returns the sample applications shown in the employer portal.
func Seed() []Application {
	return []Application{
		{
			ID: "app-001", JobID: "1", CandidateID: "cand-001",
			CandidateName: "Ramesh Singh", CandidateEmail: "ramesh.singh@email.com", CandidatePhone: "+91 9876543201",
			AppliedDate: "2024-12-10", Status: StatusNew, Experience: "1-3 years", Availability: "Immediate",
		},
		{
			ID: "app-002", JobID: "1", CandidateID: "cand-002",
			CandidateName: "Suresh Yadav", CandidateEmail: "suresh.yadav@email.com", CandidatePhone: "+91 9876543202",
			AppliedDate: "2024-12-09", Status: StatusShortlisted, Experience: "3+ years", Availability: "2 weeks",
		},
		{
			ID: "app-003", JobID: "2", CandidateID: "cand-003",
			CandidateName: "Vikram Sharma", CandidateEmail: "vikram.sharma@email.com", CandidatePhone: "+91 9876543203",
			AppliedDate: "2024-12-08", Status: StatusInterviewed, Experience: "Fresher", Availability: "Immediate",
		},
		{
			ID: "app-004", JobID: "3", CandidateID: "cand-004",
			CandidateName: "Anil Kumar", CandidateEmail: "anil.kumar@email.com", CandidatePhone: "+91 9876543204",
			AppliedDate: "2024-12-07", Status: StatusHired, Experience: "1-3 years", Availability: "1 week",
		},
		{
			ID: "app-005", JobID: "1", CandidateID: "cand-005",
			CandidateName: "Deepak Verma", CandidateEmail: "deepak.verma@email.com", CandidatePhone: "+91 9876543205",
			AppliedDate: "2024-12-06", Status: StatusRejected, Experience: "0-1 years", Availability: "Immediate",
		},
	}
}
