// Code generated by ent, DO NOT EDIT.

package productinfo

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/redditart/commissioner/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldTaskID, v))
}

// DonationID applies equality check predicate on the "donation_id" field. It's identical to DonationIDEQ.
func DonationID(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldDonationID, v))
}

// PostID applies equality check predicate on the "post_id" field. It's identical to PostIDEQ.
func PostID(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldPostID, v))
}

// Theme applies equality check predicate on the "theme" field. It's identical to ThemeEQ.
func Theme(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldTheme, v))
}

// ImageTitle applies equality check predicate on the "image_title" field. It's identical to ImageTitleEQ.
func ImageTitle(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldImageTitle, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldImageURL, v))
}

// ProductURL applies equality check predicate on the "product_url" field. It's identical to ProductURLEQ.
func ProductURL(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldProductURL, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldTemplateID, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldModel, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldPromptVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContainsFold(FieldTaskID, v))
}

// DonationIDEQ applies the EQ predicate on the "donation_id" field.
func DonationIDEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldDonationID, v))
}

// DonationIDNEQ applies the NEQ predicate on the "donation_id" field.
func DonationIDNEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNEQ(FieldDonationID, v))
}

// DonationIDIn applies the In predicate on the "donation_id" field.
func DonationIDIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIn(FieldDonationID, vs...))
}

// DonationIDNotIn applies the NotIn predicate on the "donation_id" field.
func DonationIDNotIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotIn(FieldDonationID, vs...))
}

// DonationIDGT applies the GT predicate on the "donation_id" field.
func DonationIDGT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGT(FieldDonationID, v))
}

// DonationIDGTE applies the GTE predicate on the "donation_id" field.
func DonationIDGTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGTE(FieldDonationID, v))
}

// DonationIDLT applies the LT predicate on the "donation_id" field.
func DonationIDLT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLT(FieldDonationID, v))
}

// DonationIDLTE applies the LTE predicate on the "donation_id" field.
func DonationIDLTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLTE(FieldDonationID, v))
}

// DonationIDContains applies the Contains predicate on the "donation_id" field.
func DonationIDContains(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContains(FieldDonationID, v))
}

// DonationIDHasPrefix applies the HasPrefix predicate on the "donation_id" field.
func DonationIDHasPrefix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasPrefix(FieldDonationID, v))
}

// DonationIDHasSuffix applies the HasSuffix predicate on the "donation_id" field.
func DonationIDHasSuffix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasSuffix(FieldDonationID, v))
}

// DonationIDIsNil applies the IsNil predicate on the "donation_id" field.
func DonationIDIsNil() predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIsNull(FieldDonationID))
}

// DonationIDNotNil applies the NotNil predicate on the "donation_id" field.
func DonationIDNotNil() predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotNull(FieldDonationID))
}

// DonationIDEqualFold applies the EqualFold predicate on the "donation_id" field.
func DonationIDEqualFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEqualFold(FieldDonationID, v))
}

// DonationIDContainsFold applies the ContainsFold predicate on the "donation_id" field.
func DonationIDContainsFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContainsFold(FieldDonationID, v))
}

// PostIDEQ applies the EQ predicate on the "post_id" field.
func PostIDEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldPostID, v))
}

// PostIDNEQ applies the NEQ predicate on the "post_id" field.
func PostIDNEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNEQ(FieldPostID, v))
}

// PostIDIn applies the In predicate on the "post_id" field.
func PostIDIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIn(FieldPostID, vs...))
}

// PostIDNotIn applies the NotIn predicate on the "post_id" field.
func PostIDNotIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotIn(FieldPostID, vs...))
}

// PostIDGT applies the GT predicate on the "post_id" field.
func PostIDGT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGT(FieldPostID, v))
}

// PostIDGTE applies the GTE predicate on the "post_id" field.
func PostIDGTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGTE(FieldPostID, v))
}

// PostIDLT applies the LT predicate on the "post_id" field.
func PostIDLT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLT(FieldPostID, v))
}

// PostIDLTE applies the LTE predicate on the "post_id" field.
func PostIDLTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLTE(FieldPostID, v))
}

// PostIDContains applies the Contains predicate on the "post_id" field.
func PostIDContains(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContains(FieldPostID, v))
}

// PostIDHasPrefix applies the HasPrefix predicate on the "post_id" field.
func PostIDHasPrefix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasPrefix(FieldPostID, v))
}

// PostIDHasSuffix applies the HasSuffix predicate on the "post_id" field.
func PostIDHasSuffix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasSuffix(FieldPostID, v))
}

// PostIDEqualFold applies the EqualFold predicate on the "post_id" field.
func PostIDEqualFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEqualFold(FieldPostID, v))
}

// PostIDContainsFold applies the ContainsFold predicate on the "post_id" field.
func PostIDContainsFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContainsFold(FieldPostID, v))
}

// ThemeEQ applies the EQ predicate on the "theme" field.
func ThemeEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldTheme, v))
}

// ThemeNEQ applies the NEQ predicate on the "theme" field.
func ThemeNEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNEQ(FieldTheme, v))
}

// ThemeIn applies the In predicate on the "theme" field.
func ThemeIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIn(FieldTheme, vs...))
}

// ThemeNotIn applies the NotIn predicate on the "theme" field.
func ThemeNotIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotIn(FieldTheme, vs...))
}

// ThemeGT applies the GT predicate on the "theme" field.
func ThemeGT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGT(FieldTheme, v))
}

// ThemeGTE applies the GTE predicate on the "theme" field.
func ThemeGTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGTE(FieldTheme, v))
}

// ThemeLT applies the LT predicate on the "theme" field.
func ThemeLT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLT(FieldTheme, v))
}

// ThemeLTE applies the LTE predicate on the "theme" field.
func ThemeLTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLTE(FieldTheme, v))
}

// ThemeContains applies the Contains predicate on the "theme" field.
func ThemeContains(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContains(FieldTheme, v))
}

// ThemeHasPrefix applies the HasPrefix predicate on the "theme" field.
func ThemeHasPrefix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasPrefix(FieldTheme, v))
}

// ThemeHasSuffix applies the HasSuffix predicate on the "theme" field.
func ThemeHasSuffix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasSuffix(FieldTheme, v))
}

// ThemeEqualFold applies the EqualFold predicate on the "theme" field.
func ThemeEqualFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEqualFold(FieldTheme, v))
}

// ThemeContainsFold applies the ContainsFold predicate on the "theme" field.
func ThemeContainsFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContainsFold(FieldTheme, v))
}

// ImageTitleEQ applies the EQ predicate on the "image_title" field.
func ImageTitleEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldImageTitle, v))
}

// ImageTitleNEQ applies the NEQ predicate on the "image_title" field.
func ImageTitleNEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNEQ(FieldImageTitle, v))
}

// ImageTitleIn applies the In predicate on the "image_title" field.
func ImageTitleIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIn(FieldImageTitle, vs...))
}

// ImageTitleNotIn applies the NotIn predicate on the "image_title" field.
func ImageTitleNotIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotIn(FieldImageTitle, vs...))
}

// ImageTitleGT applies the GT predicate on the "image_title" field.
func ImageTitleGT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGT(FieldImageTitle, v))
}

// ImageTitleGTE applies the GTE predicate on the "image_title" field.
func ImageTitleGTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGTE(FieldImageTitle, v))
}

// ImageTitleLT applies the LT predicate on the "image_title" field.
func ImageTitleLT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLT(FieldImageTitle, v))
}

// ImageTitleLTE applies the LTE predicate on the "image_title" field.
func ImageTitleLTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLTE(FieldImageTitle, v))
}

// ImageTitleContains applies the Contains predicate on the "image_title" field.
func ImageTitleContains(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContains(FieldImageTitle, v))
}

// ImageTitleHasPrefix applies the HasPrefix predicate on the "image_title" field.
func ImageTitleHasPrefix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasPrefix(FieldImageTitle, v))
}

// ImageTitleHasSuffix applies the HasSuffix predicate on the "image_title" field.
func ImageTitleHasSuffix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasSuffix(FieldImageTitle, v))
}

// ImageTitleEqualFold applies the EqualFold predicate on the "image_title" field.
func ImageTitleEqualFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEqualFold(FieldImageTitle, v))
}

// ImageTitleContainsFold applies the ContainsFold predicate on the "image_title" field.
func ImageTitleContainsFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContainsFold(FieldImageTitle, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContainsFold(FieldImageURL, v))
}

// ProductURLEQ applies the EQ predicate on the "product_url" field.
func ProductURLEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldProductURL, v))
}

// ProductURLNEQ applies the NEQ predicate on the "product_url" field.
func ProductURLNEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNEQ(FieldProductURL, v))
}

// ProductURLIn applies the In predicate on the "product_url" field.
func ProductURLIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIn(FieldProductURL, vs...))
}

// ProductURLNotIn applies the NotIn predicate on the "product_url" field.
func ProductURLNotIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotIn(FieldProductURL, vs...))
}

// ProductURLGT applies the GT predicate on the "product_url" field.
func ProductURLGT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGT(FieldProductURL, v))
}

// ProductURLGTE applies the GTE predicate on the "product_url" field.
func ProductURLGTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGTE(FieldProductURL, v))
}

// ProductURLLT applies the LT predicate on the "product_url" field.
func ProductURLLT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLT(FieldProductURL, v))
}

// ProductURLLTE applies the LTE predicate on the "product_url" field.
func ProductURLLTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLTE(FieldProductURL, v))
}

// ProductURLContains applies the Contains predicate on the "product_url" field.
func ProductURLContains(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContains(FieldProductURL, v))
}

// ProductURLHasPrefix applies the HasPrefix predicate on the "product_url" field.
func ProductURLHasPrefix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasPrefix(FieldProductURL, v))
}

// ProductURLHasSuffix applies the HasSuffix predicate on the "product_url" field.
func ProductURLHasSuffix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasSuffix(FieldProductURL, v))
}

// ProductURLEqualFold applies the EqualFold predicate on the "product_url" field.
func ProductURLEqualFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEqualFold(FieldProductURL, v))
}

// ProductURLContainsFold applies the ContainsFold predicate on the "product_url" field.
func ProductURLContainsFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContainsFold(FieldProductURL, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDContains applies the Contains predicate on the "template_id" field.
func TemplateIDContains(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContains(FieldTemplateID, v))
}

// TemplateIDHasPrefix applies the HasPrefix predicate on the "template_id" field.
func TemplateIDHasPrefix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasPrefix(FieldTemplateID, v))
}

// TemplateIDHasSuffix applies the HasSuffix predicate on the "template_id" field.
func TemplateIDHasSuffix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasSuffix(FieldTemplateID, v))
}

// TemplateIDEqualFold applies the EqualFold predicate on the "template_id" field.
func TemplateIDEqualFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEqualFold(FieldTemplateID, v))
}

// TemplateIDContainsFold applies the ContainsFold predicate on the "template_id" field.
func TemplateIDContainsFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContainsFold(FieldTemplateID, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContainsFold(FieldModel, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldContainsFold(FieldPromptVersion, v))
}

// ImageQualityEQ applies the EQ predicate on the "image_quality" field.
func ImageQualityEQ(v ImageQuality) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldImageQuality, v))
}

// ImageQualityNEQ applies the NEQ predicate on the "image_quality" field.
func ImageQualityNEQ(v ImageQuality) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNEQ(FieldImageQuality, v))
}

// ImageQualityIn applies the In predicate on the "image_quality" field.
func ImageQualityIn(vs ...ImageQuality) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIn(FieldImageQuality, vs...))
}

// ImageQualityNotIn applies the NotIn predicate on the "image_quality" field.
func ImageQualityNotIn(vs ...ImageQuality) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotIn(FieldImageQuality, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProductInfo {
	return predicate.ProductInfo(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProductInfo) predicate.ProductInfo {
	return predicate.ProductInfo(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProductInfo) predicate.ProductInfo {
	return predicate.ProductInfo(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProductInfo) predicate.ProductInfo {
	return predicate.ProductInfo(sql.NotPredicates(p))
}
