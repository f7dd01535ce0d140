package roster

// notices.go maps form validation outcomes to the notifications shown to
// the user.
//
//	incomplete    Wrong!                 All form fields must be completed
//	bad-name      Wrong Name!            The name must contain 4 to 30 letters!
//	bad-position  Wrong Position name!   The position name should have more than 2 letters!
//	bad-age       Wrong Age!             The employee must be over 18 and under 90!
//	bad-salary    Wrong Salary!          The salary should be a positive number!
//	(success)     Success!               A new employee was added to the table!

import "github.com/JonMunkholm/employee-table/internal/notify"

var notices = map[Reason]notify.Notification{
	ReasonIncomplete: {
		Title:       "Wrong!",
		Description: "All form fields must be completed",
		Kind:        notify.KindError,
	},
	ReasonBadName: {
		Title:       "Wrong Name!",
		Description: "The name must contain 4 to 30 letters!",
		Kind:        notify.KindError,
	},
	ReasonBadPosition: {
		Title:       "Wrong Position name!",
		Description: "The position name should have more than 2 letters!",
		Kind:        notify.KindError,
	},
	ReasonBadAge: {
		Title:       "Wrong Age!",
		Description: "The employee must be over 18 and under 90!",
		Kind:        notify.KindError,
	},
	ReasonBadSalary: {
		Title:       "Wrong Salary!",
		Description: "The salary should be a positive number!",
		Kind:        notify.KindError,
	},
}

var successNotice = notify.Notification{
	Title:       "Success!",
	Description: "A new employee was added to the table!",
	Kind:        notify.KindSuccess,
}

// Notice returns the notification for the outcome of Validate.
// A nil error yields the success notice; errors without a known Reason
// fall back to the incomplete notice.
func Notice(err error) notify.Notification {
	if err == nil {
		return successNotice
	}
	if n, ok := notices[ReasonOf(err)]; ok {
		return n
	}
	return notices[ReasonIncomplete]
}
