// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityLogsColumns holds the columns for the "activity_logs" table.
	ActivityLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "actor_kind", Type: field.TypeString},
		{Name: "actor_id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "message", Type: field.TypeString},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ActivityLogsTable holds the schema information for the "activity_logs" table.
	ActivityLogsTable = &schema.Table{
		Name:       "activity_logs",
		Columns:    ActivityLogsColumns,
		PrimaryKey: []*schema.Column{ActivityLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activitylog_actor_kind_actor_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[1], ActivityLogsColumns[2], ActivityLogsColumns[6]},
			},
		},
	}
	// CalendarDaysColumns holds the columns for the "calendar_days" table.
	CalendarDaysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "instructor_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CalendarDaysTable holds the schema information for the "calendar_days" table.
	CalendarDaysTable = &schema.Table{
		Name:       "calendar_days",
		Columns:    CalendarDaysColumns,
		PrimaryKey: []*schema.Column{CalendarDaysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "calendarday_instructor_id_date",
				Unique:  true,
				Columns: []*schema.Column{CalendarDaysColumns[1], CalendarDaysColumns[2]},
			},
		},
	}
	// InstructorsColumns holds the columns for the "instructors" table.
	InstructorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Default: ""},
		{Name: "account_ref", Type: field.TypeString, Default: ""},
		{Name: "onboarding_complete", Type: field.TypeBool, Default: false},
		{Name: "charges_enabled", Type: field.TypeBool, Default: false},
		{Name: "payouts_enabled", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InstructorsTable holds the schema information for the "instructors" table.
	InstructorsTable = &schema.Table{
		Name:       "instructors",
		Columns:    InstructorsColumns,
		PrimaryKey: []*schema.Column{InstructorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "instructor_account_ref",
				Unique:  false,
				Columns: []*schema.Column{InstructorsColumns[3]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "instructor_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeTime},
		{Name: "start_time", Type: field.TypeString, Default: ""},
		{Name: "end_time", Type: field.TypeString, Default: ""},
		{Name: "amount_pence", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "order_id", Type: field.TypeUUID},
		{Name: "slot_id", Type: field.TypeUUID, Nullable: true},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lessons_orders_lessons",
				Columns:    []*schema.Column{LessonsColumns[10]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "lessons_time_slots_lessons",
				Columns:    []*schema.Column{LessonsColumns[11]},
				RefColumns: []*schema.Column{TimeSlotsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_order_id",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[10]},
			},
			{
				Name:    "lesson_slot_id",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[11]},
			},
			{
				Name:    "lesson_instructor_id_date",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[1], LessonsColumns[2]},
			},
		},
	}
	// LessonPaymentsColumns holds the columns for the "lesson_payments" table.
	LessonPaymentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "amount_pence", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeString, Default: "due"},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "invoice_ref", Type: field.TypeString, Default: ""},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeUUID, Unique: true},
	}
	// LessonPaymentsTable holds the schema information for the "lesson_payments" table.
	LessonPaymentsTable = &schema.Table{
		Name:       "lesson_payments",
		Columns:    LessonPaymentsColumns,
		PrimaryKey: []*schema.Column{LessonPaymentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lesson_payments_lessons_payment",
				Columns:    []*schema.Column{LessonPaymentsColumns[7]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lessonpayment_invoice_ref",
				Unique:  false,
				Columns: []*schema.Column{LessonPaymentsColumns[4]},
			},
			{
				Name:    "lessonpayment_status_due_date",
				Unique:  false,
				Columns: []*schema.Column{LessonPaymentsColumns[2], LessonPaymentsColumns[3]},
			},
		},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "student_id", Type: field.TypeUUID},
		{Name: "instructor_id", Type: field.TypeUUID},
		{Name: "package_name", Type: field.TypeString},
		{Name: "package_total_price_pence", Type: field.TypeInt64},
		{Name: "package_lesson_price_pence", Type: field.TypeInt64},
		{Name: "package_lesson_count", Type: field.TypeInt},
		{Name: "payment_mode", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "customer_ref", Type: field.TypeString, Default: ""},
		{Name: "checkout_session_ref", Type: field.TypeString, Default: ""},
		{Name: "payment_ref", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "order_student_id",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[1]},
			},
			{
				Name:    "order_instructor_id",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[2]},
			},
			{
				Name:    "order_checkout_session_ref",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[10]},
			},
		},
	}
	// PayoutsColumns holds the columns for the "payouts" table.
	PayoutsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "instructor_id", Type: field.TypeUUID},
		{Name: "amount_pence", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "transfer_ref", Type: field.TypeString, Default: ""},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeUUID, Unique: true},
	}
	// PayoutsTable holds the schema information for the "payouts" table.
	PayoutsTable = &schema.Table{
		Name:       "payouts",
		Columns:    PayoutsColumns,
		PrimaryKey: []*schema.Column{PayoutsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payouts_lessons_payout",
				Columns:    []*schema.Column{PayoutsColumns[7]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "payout_instructor_id",
				Unique:  false,
				Columns: []*schema.Column{PayoutsColumns[1]},
			},
		},
	}
	// ProcessedEventsColumns holds the columns for the "processed_events" table.
	ProcessedEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeBytes, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
	}
	// ProcessedEventsTable holds the schema information for the "processed_events" table.
	ProcessedEventsTable = &schema.Table{
		Name:       "processed_events",
		Columns:    ProcessedEventsColumns,
		PrimaryKey: []*schema.Column{ProcessedEventsColumns[0]},
	}
	// TimeSlotsColumns holds the columns for the "time_slots" table.
	TimeSlotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "instructor_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeTime},
		{Name: "start_time", Type: field.TypeString},
		{Name: "end_time", Type: field.TypeString},
		{Name: "is_available", Type: field.TypeBool, Default: true},
		{Name: "status", Type: field.TypeString, Default: "open"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "day_id", Type: field.TypeUUID},
	}
	// TimeSlotsTable holds the schema information for the "time_slots" table.
	TimeSlotsTable = &schema.Table{
		Name:       "time_slots",
		Columns:    TimeSlotsColumns,
		PrimaryKey: []*schema.Column{TimeSlotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "time_slots_calendar_days_slots",
				Columns:    []*schema.Column{TimeSlotsColumns[9]},
				RefColumns: []*schema.Column{CalendarDaysColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "timeslot_day_id",
				Unique:  false,
				Columns: []*schema.Column{TimeSlotsColumns[9]},
			},
			{
				Name:    "timeslot_instructor_id_date",
				Unique:  false,
				Columns: []*schema.Column{TimeSlotsColumns[1], TimeSlotsColumns[2]},
			},
			{
				Name:    "timeslot_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TimeSlotsColumns[6], TimeSlotsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityLogsTable,
		CalendarDaysTable,
		InstructorsTable,
		LessonsTable,
		LessonPaymentsTable,
		OrdersTable,
		PayoutsTable,
		ProcessedEventsTable,
		TimeSlotsTable,
	}
)

func init() {
	LessonsTable.ForeignKeys[0].RefTable = OrdersTable
	LessonsTable.ForeignKeys[1].RefTable = TimeSlotsTable
	LessonPaymentsTable.ForeignKeys[0].RefTable = LessonsTable
	PayoutsTable.ForeignKeys[0].RefTable = LessonsTable
	TimeSlotsTable.ForeignKeys[0].RefTable = CalendarDaysTable
}
