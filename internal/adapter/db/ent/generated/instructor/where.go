// Code generated by ent, DO NOT EDIT.

package instructor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/drivekit/drivekit/internal/adapter/db/ent/generated/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Instructor {
	return predicate.Instructor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Instructor {
	return predicate.Instructor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Instructor {
	return predicate.Instructor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Instructor {
	return predicate.Instructor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Instructor {
	return predicate.Instructor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Instructor {
	return predicate.Instructor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Instructor {
	return predicate.Instructor(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldEmail, v))
}

// AccountRef applies equality check predicate on the "account_ref" field. It's identical to AccountRefEQ.
func AccountRef(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldAccountRef, v))
}

// OnboardingComplete applies equality check predicate on the "onboarding_complete" field. It's identical to OnboardingCompleteEQ.
func OnboardingComplete(v bool) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldOnboardingComplete, v))
}

// ChargesEnabled applies equality check predicate on the "charges_enabled" field. It's identical to ChargesEnabledEQ.
func ChargesEnabled(v bool) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldChargesEnabled, v))
}

// PayoutsEnabled applies equality check predicate on the "payouts_enabled" field. It's identical to PayoutsEnabledEQ.
func PayoutsEnabled(v bool) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldPayoutsEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Instructor {
	return predicate.Instructor(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Instructor {
	return predicate.Instructor(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Instructor {
	return predicate.Instructor(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Instructor {
	return predicate.Instructor(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldContainsFold(FieldEmail, v))
}

// AccountRefEQ applies the EQ predicate on the "account_ref" field.
func AccountRefEQ(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldAccountRef, v))
}

// AccountRefNEQ applies the NEQ predicate on the "account_ref" field.
func AccountRefNEQ(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldNEQ(FieldAccountRef, v))
}

// AccountRefIn applies the In predicate on the "account_ref" field.
func AccountRefIn(vs ...string) predicate.Instructor {
	return predicate.Instructor(sql.FieldIn(FieldAccountRef, vs...))
}

// AccountRefNotIn applies the NotIn predicate on the "account_ref" field.
func AccountRefNotIn(vs ...string) predicate.Instructor {
	return predicate.Instructor(sql.FieldNotIn(FieldAccountRef, vs...))
}

// AccountRefGT applies the GT predicate on the "account_ref" field.
func AccountRefGT(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldGT(FieldAccountRef, v))
}

// AccountRefGTE applies the GTE predicate on the "account_ref" field.
func AccountRefGTE(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldGTE(FieldAccountRef, v))
}

// AccountRefLT applies the LT predicate on the "account_ref" field.
func AccountRefLT(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldLT(FieldAccountRef, v))
}

// AccountRefLTE applies the LTE predicate on the "account_ref" field.
func AccountRefLTE(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldLTE(FieldAccountRef, v))
}

// AccountRefContains applies the Contains predicate on the "account_ref" field.
func AccountRefContains(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldContains(FieldAccountRef, v))
}

// AccountRefHasPrefix applies the HasPrefix predicate on the "account_ref" field.
func AccountRefHasPrefix(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldHasPrefix(FieldAccountRef, v))
}

// AccountRefHasSuffix applies the HasSuffix predicate on the "account_ref" field.
func AccountRefHasSuffix(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldHasSuffix(FieldAccountRef, v))
}

// AccountRefEqualFold applies the EqualFold predicate on the "account_ref" field.
func AccountRefEqualFold(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldEqualFold(FieldAccountRef, v))
}

// AccountRefContainsFold applies the ContainsFold predicate on the "account_ref" field.
func AccountRefContainsFold(v string) predicate.Instructor {
	return predicate.Instructor(sql.FieldContainsFold(FieldAccountRef, v))
}

// OnboardingCompleteEQ applies the EQ predicate on the "onboarding_complete" field.
func OnboardingCompleteEQ(v bool) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldOnboardingComplete, v))
}

// OnboardingCompleteNEQ applies the NEQ predicate on the "onboarding_complete" field.
func OnboardingCompleteNEQ(v bool) predicate.Instructor {
	return predicate.Instructor(sql.FieldNEQ(FieldOnboardingComplete, v))
}

// ChargesEnabledEQ applies the EQ predicate on the "charges_enabled" field.
func ChargesEnabledEQ(v bool) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldChargesEnabled, v))
}

// ChargesEnabledNEQ applies the NEQ predicate on the "charges_enabled" field.
func ChargesEnabledNEQ(v bool) predicate.Instructor {
	return predicate.Instructor(sql.FieldNEQ(FieldChargesEnabled, v))
}

// PayoutsEnabledEQ applies the EQ predicate on the "payouts_enabled" field.
func PayoutsEnabledEQ(v bool) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldPayoutsEnabled, v))
}

// PayoutsEnabledNEQ applies the NEQ predicate on the "payouts_enabled" field.
func PayoutsEnabledNEQ(v bool) predicate.Instructor {
	return predicate.Instructor(sql.FieldNEQ(FieldPayoutsEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Instructor {
	return predicate.Instructor(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Instructor) predicate.Instructor {
	return predicate.Instructor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Instructor) predicate.Instructor {
	return predicate.Instructor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Instructor) predicate.Instructor {
	return predicate.Instructor(sql.NotPredicates(p))
}
