// Code generated by ent, DO NOT EDIT.

package generated

import (
	"time"

	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/activitylog"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/calendarday"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/instructor"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lesson"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/lessonpayment"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/order"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/payout"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/processedevent"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/timeslot"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activitylogFields := schema.ActivityLog{}.Fields()
	_ = activitylogFields
	// activitylogDescActorKind is the schema descriptor for actor_kind field.
	activitylogDescActorKind := activitylogFields[1].Descriptor()
	// activitylog.ActorKindValidator is a validator for the "actor_kind" field. It is called by the builders before save.
	activitylog.ActorKindValidator = activitylogDescActorKind.Validators[0].(func(string) error)
	// activitylogDescCategory is the schema descriptor for category field.
	activitylogDescCategory := activitylogFields[3].Descriptor()
	// activitylog.DefaultCategory holds the default value on creation for the category field.
	activitylog.DefaultCategory = activitylogDescCategory.Default.(string)
	// activitylogDescCreatedAt is the schema descriptor for created_at field.
	activitylogDescCreatedAt := activitylogFields[6].Descriptor()
	// activitylog.DefaultCreatedAt holds the default value on creation for the created_at field.
	activitylog.DefaultCreatedAt = activitylogDescCreatedAt.Default.(func() time.Time)
	// activitylogDescID is the schema descriptor for id field.
	activitylogDescID := activitylogFields[0].Descriptor()
	// activitylog.DefaultID holds the default value on creation for the id field.
	activitylog.DefaultID = activitylogDescID.Default.(func() uuid.UUID)
	calendardayFields := schema.CalendarDay{}.Fields()
	_ = calendardayFields
	// calendardayDescCreatedAt is the schema descriptor for created_at field.
	calendardayDescCreatedAt := calendardayFields[3].Descriptor()
	// calendarday.DefaultCreatedAt holds the default value on creation for the created_at field.
	calendarday.DefaultCreatedAt = calendardayDescCreatedAt.Default.(func() time.Time)
	// calendardayDescID is the schema descriptor for id field.
	calendardayDescID := calendardayFields[0].Descriptor()
	// calendarday.DefaultID holds the default value on creation for the id field.
	calendarday.DefaultID = calendardayDescID.Default.(func() uuid.UUID)
	instructorFields := schema.Instructor{}.Fields()
	_ = instructorFields
	// instructorDescEmail is the schema descriptor for email field.
	instructorDescEmail := instructorFields[2].Descriptor()
	// instructor.DefaultEmail holds the default value on creation for the email field.
	instructor.DefaultEmail = instructorDescEmail.Default.(string)
	// instructorDescAccountRef is the schema descriptor for account_ref field.
	instructorDescAccountRef := instructorFields[3].Descriptor()
	// instructor.DefaultAccountRef holds the default value on creation for the account_ref field.
	instructor.DefaultAccountRef = instructorDescAccountRef.Default.(string)
	// instructorDescOnboardingComplete is the schema descriptor for onboarding_complete field.
	instructorDescOnboardingComplete := instructorFields[4].Descriptor()
	// instructor.DefaultOnboardingComplete holds the default value on creation for the onboarding_complete field.
	instructor.DefaultOnboardingComplete = instructorDescOnboardingComplete.Default.(bool)
	// instructorDescChargesEnabled is the schema descriptor for charges_enabled field.
	instructorDescChargesEnabled := instructorFields[5].Descriptor()
	// instructor.DefaultChargesEnabled holds the default value on creation for the charges_enabled field.
	instructor.DefaultChargesEnabled = instructorDescChargesEnabled.Default.(bool)
	// instructorDescPayoutsEnabled is the schema descriptor for payouts_enabled field.
	instructorDescPayoutsEnabled := instructorFields[6].Descriptor()
	// instructor.DefaultPayoutsEnabled holds the default value on creation for the payouts_enabled field.
	instructor.DefaultPayoutsEnabled = instructorDescPayoutsEnabled.Default.(bool)
	// instructorDescCreatedAt is the schema descriptor for created_at field.
	instructorDescCreatedAt := instructorFields[7].Descriptor()
	// instructor.DefaultCreatedAt holds the default value on creation for the created_at field.
	instructor.DefaultCreatedAt = instructorDescCreatedAt.Default.(func() time.Time)
	// instructorDescUpdatedAt is the schema descriptor for updated_at field.
	instructorDescUpdatedAt := instructorFields[8].Descriptor()
	// instructor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	instructor.DefaultUpdatedAt = instructorDescUpdatedAt.Default.(func() time.Time)
	// instructor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	instructor.UpdateDefaultUpdatedAt = instructorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// instructorDescID is the schema descriptor for id field.
	instructorDescID := instructorFields[0].Descriptor()
	// instructor.DefaultID holds the default value on creation for the id field.
	instructor.DefaultID = instructorDescID.Default.(func() uuid.UUID)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescStartTime is the schema descriptor for start_time field.
	lessonDescStartTime := lessonFields[5].Descriptor()
	// lesson.DefaultStartTime holds the default value on creation for the start_time field.
	lesson.DefaultStartTime = lessonDescStartTime.Default.(string)
	// lessonDescEndTime is the schema descriptor for end_time field.
	lessonDescEndTime := lessonFields[6].Descriptor()
	// lesson.DefaultEndTime holds the default value on creation for the end_time field.
	lesson.DefaultEndTime = lessonDescEndTime.Default.(string)
	// lessonDescStatus is the schema descriptor for status field.
	lessonDescStatus := lessonFields[8].Descriptor()
	// lesson.DefaultStatus holds the default value on creation for the status field.
	lesson.DefaultStatus = lessonDescStatus.Default.(string)
	// lesson.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	lesson.StatusValidator = lessonDescStatus.Validators[0].(func(string) error)
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonFields[10].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	// lessonDescUpdatedAt is the schema descriptor for updated_at field.
	lessonDescUpdatedAt := lessonFields[11].Descriptor()
	// lesson.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lesson.DefaultUpdatedAt = lessonDescUpdatedAt.Default.(func() time.Time)
	// lesson.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lesson.UpdateDefaultUpdatedAt = lessonDescUpdatedAt.UpdateDefault.(func() time.Time)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.DefaultID holds the default value on creation for the id field.
	lesson.DefaultID = lessonDescID.Default.(func() uuid.UUID)
	lessonpaymentFields := schema.LessonPayment{}.Fields()
	_ = lessonpaymentFields
	// lessonpaymentDescStatus is the schema descriptor for status field.
	lessonpaymentDescStatus := lessonpaymentFields[3].Descriptor()
	// lessonpayment.DefaultStatus holds the default value on creation for the status field.
	lessonpayment.DefaultStatus = lessonpaymentDescStatus.Default.(string)
	// lessonpayment.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	lessonpayment.StatusValidator = lessonpaymentDescStatus.Validators[0].(func(string) error)
	// lessonpaymentDescInvoiceRef is the schema descriptor for invoice_ref field.
	lessonpaymentDescInvoiceRef := lessonpaymentFields[5].Descriptor()
	// lessonpayment.DefaultInvoiceRef holds the default value on creation for the invoice_ref field.
	lessonpayment.DefaultInvoiceRef = lessonpaymentDescInvoiceRef.Default.(string)
	// lessonpaymentDescCreatedAt is the schema descriptor for created_at field.
	lessonpaymentDescCreatedAt := lessonpaymentFields[7].Descriptor()
	// lessonpayment.DefaultCreatedAt holds the default value on creation for the created_at field.
	lessonpayment.DefaultCreatedAt = lessonpaymentDescCreatedAt.Default.(func() time.Time)
	// lessonpaymentDescID is the schema descriptor for id field.
	lessonpaymentDescID := lessonpaymentFields[0].Descriptor()
	// lessonpayment.DefaultID holds the default value on creation for the id field.
	lessonpayment.DefaultID = lessonpaymentDescID.Default.(func() uuid.UUID)
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescPaymentMode is the schema descriptor for payment_mode field.
	orderDescPaymentMode := orderFields[7].Descriptor()
	// order.PaymentModeValidator is a validator for the "payment_mode" field. It is called by the builders before save.
	order.PaymentModeValidator = orderDescPaymentMode.Validators[0].(func(string) error)
	// orderDescStatus is the schema descriptor for status field.
	orderDescStatus := orderFields[8].Descriptor()
	// order.DefaultStatus holds the default value on creation for the status field.
	order.DefaultStatus = orderDescStatus.Default.(string)
	// order.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	order.StatusValidator = orderDescStatus.Validators[0].(func(string) error)
	// orderDescCustomerRef is the schema descriptor for customer_ref field.
	orderDescCustomerRef := orderFields[9].Descriptor()
	// order.DefaultCustomerRef holds the default value on creation for the customer_ref field.
	order.DefaultCustomerRef = orderDescCustomerRef.Default.(string)
	// orderDescCheckoutSessionRef is the schema descriptor for checkout_session_ref field.
	orderDescCheckoutSessionRef := orderFields[10].Descriptor()
	// order.DefaultCheckoutSessionRef holds the default value on creation for the checkout_session_ref field.
	order.DefaultCheckoutSessionRef = orderDescCheckoutSessionRef.Default.(string)
	// orderDescPaymentRef is the schema descriptor for payment_ref field.
	orderDescPaymentRef := orderFields[11].Descriptor()
	// order.DefaultPaymentRef holds the default value on creation for the payment_ref field.
	order.DefaultPaymentRef = orderDescPaymentRef.Default.(string)
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[12].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescUpdatedAt is the schema descriptor for updated_at field.
	orderDescUpdatedAt := orderFields[13].Descriptor()
	// order.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	order.DefaultUpdatedAt = orderDescUpdatedAt.Default.(func() time.Time)
	// order.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	order.UpdateDefaultUpdatedAt = orderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// orderDescID is the schema descriptor for id field.
	orderDescID := orderFields[0].Descriptor()
	// order.DefaultID holds the default value on creation for the id field.
	order.DefaultID = orderDescID.Default.(func() uuid.UUID)
	payoutFields := schema.Payout{}.Fields()
	_ = payoutFields
	// payoutDescStatus is the schema descriptor for status field.
	payoutDescStatus := payoutFields[4].Descriptor()
	// payout.DefaultStatus holds the default value on creation for the status field.
	payout.DefaultStatus = payoutDescStatus.Default.(string)
	// payout.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	payout.StatusValidator = payoutDescStatus.Validators[0].(func(string) error)
	// payoutDescTransferRef is the schema descriptor for transfer_ref field.
	payoutDescTransferRef := payoutFields[5].Descriptor()
	// payout.DefaultTransferRef holds the default value on creation for the transfer_ref field.
	payout.DefaultTransferRef = payoutDescTransferRef.Default.(string)
	// payoutDescCreatedAt is the schema descriptor for created_at field.
	payoutDescCreatedAt := payoutFields[7].Descriptor()
	// payout.DefaultCreatedAt holds the default value on creation for the created_at field.
	payout.DefaultCreatedAt = payoutDescCreatedAt.Default.(func() time.Time)
	// payoutDescID is the schema descriptor for id field.
	payoutDescID := payoutFields[0].Descriptor()
	// payout.DefaultID holds the default value on creation for the id field.
	payout.DefaultID = payoutDescID.Default.(func() uuid.UUID)
	processedeventFields := schema.ProcessedEvent{}.Fields()
	_ = processedeventFields
	// processedeventDescReceivedAt is the schema descriptor for received_at field.
	processedeventDescReceivedAt := processedeventFields[4].Descriptor()
	// processedevent.DefaultReceivedAt holds the default value on creation for the received_at field.
	processedevent.DefaultReceivedAt = processedeventDescReceivedAt.Default.(func() time.Time)
	// processedeventDescID is the schema descriptor for id field.
	processedeventDescID := processedeventFields[0].Descriptor()
	// processedevent.DefaultID holds the default value on creation for the id field.
	processedevent.DefaultID = processedeventDescID.Default.(func() uuid.UUID)
	timeslotFields := schema.TimeSlot{}.Fields()
	_ = timeslotFields
	// timeslotDescIsAvailable is the schema descriptor for is_available field.
	timeslotDescIsAvailable := timeslotFields[6].Descriptor()
	// timeslot.DefaultIsAvailable holds the default value on creation for the is_available field.
	timeslot.DefaultIsAvailable = timeslotDescIsAvailable.Default.(bool)
	// timeslotDescStatus is the schema descriptor for status field.
	timeslotDescStatus := timeslotFields[7].Descriptor()
	// timeslot.DefaultStatus holds the default value on creation for the status field.
	timeslot.DefaultStatus = timeslotDescStatus.Default.(string)
	// timeslot.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	timeslot.StatusValidator = timeslotDescStatus.Validators[0].(func(string) error)
	// timeslotDescCreatedAt is the schema descriptor for created_at field.
	timeslotDescCreatedAt := timeslotFields[8].Descriptor()
	// timeslot.DefaultCreatedAt holds the default value on creation for the created_at field.
	timeslot.DefaultCreatedAt = timeslotDescCreatedAt.Default.(func() time.Time)
	// timeslotDescUpdatedAt is the schema descriptor for updated_at field.
	timeslotDescUpdatedAt := timeslotFields[9].Descriptor()
	// timeslot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	timeslot.DefaultUpdatedAt = timeslotDescUpdatedAt.Default.(func() time.Time)
	// timeslot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	timeslot.UpdateDefaultUpdatedAt = timeslotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// timeslotDescID is the schema descriptor for id field.
	timeslotDescID := timeslotFields[0].Descriptor()
	// timeslot.DefaultID holds the default value on creation for the id field.
	timeslot.DefaultID = timeslotDescID.Default.(func() uuid.UUID)
}
