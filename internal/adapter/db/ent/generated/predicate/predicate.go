// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityLog is the predicate function for activitylog builders.
type ActivityLog func(*sql.Selector)

// CalendarDay is the predicate function for calendarday builders.
type CalendarDay func(*sql.Selector)

// Instructor is the predicate function for instructor builders.
type Instructor func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// LessonPayment is the predicate function for lessonpayment builders.
type LessonPayment func(*sql.Selector)

// Order is the predicate function for order builders.
type Order func(*sql.Selector)

// Payout is the predicate function for payout builders.
type Payout func(*sql.Selector)

// ProcessedEvent is the predicate function for processedevent builders.
type ProcessedEvent func(*sql.Selector)

// TimeSlot is the predicate function for timeslot builders.
type TimeSlot func(*sql.Selector)
