package store

import (
	"github.com/rishabhsssrrr13/ppss/internal/domain"
)

// DefaultIntents returns the stock campus FAQ intents loaded into an empty
// database on first start. Admins can edit or remove them afterwards.
func DefaultIntents() []domain.Intent {
	return []domain.Intent{
		{Tag: "student", Pattern: "Student Info", Response: "This section contains your personal student profile and academic performance."},
		{Tag: "exam", Pattern: "Exam Dates", Response: "Mid-semester: Oct 15 | End-semester: Dec 10"},
		{Tag: "calendar", Pattern: "Academic Calendar", Response: "You can download the calendar from the official college website."},
		{Tag: "class", Pattern: "Classes", Response: "Classes run from Monday to Saturday, 9 AM to 5 PM."},
		{Tag: "admission", Pattern: "Admission", Response: "For admission queries, visit the admin office or call 01234-567890."},
		{Tag: "complaint", Pattern: "Complaints", Response: "You can submit complaints in Room 102 or via student portal."},
		{Tag: "comment", Pattern: "Comments", Response: "We value your feedback! Mail to feedback@college.edu."},
		{Tag: "library", Pattern: "Library Info", Response: "Library is open 8 AM to 8 PM. Membership is mandatory."},
		{Tag: "faculty", Pattern: "Faculty List", Response: "Visit faculty directory on the portal or ask department office."},
		{Tag: "campus", Pattern: "Campus Map", Response: "Find the campus map at the entrance gate or website homepage."},
		{Tag: "menu", Pattern: "Main Menu", Response: "Student Info | Exam Dates | Academic Calendar | Classes | Admission | Complaints | Comments | Library Info | Faculty List | Campus Map"},
	}
}
