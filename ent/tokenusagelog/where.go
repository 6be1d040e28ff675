// Code generated by ent, DO NOT EDIT.

package tokenusagelog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/elliotbonneville/silt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldContainsFold(FieldID, id))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldModel, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldProvider, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldCompletionTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldTotalTokens, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldCost, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldAgentID, v))
}

// SourceEventID applies equality check predicate on the "source_event_id" field. It's identical to SourceEventIDEQ.
func SourceEventID(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldSourceEventID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldCreatedAt, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldContainsFold(FieldModel, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldContainsFold(FieldProvider, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLTE(FieldCompletionTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLTE(FieldTotalTokens, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLTE(FieldCost, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNotIn(FieldSource, vs...))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldContainsFold(FieldAgentID, v))
}

// SourceEventIDEQ applies the EQ predicate on the "source_event_id" field.
func SourceEventIDEQ(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldSourceEventID, v))
}

// SourceEventIDNEQ applies the NEQ predicate on the "source_event_id" field.
func SourceEventIDNEQ(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNEQ(FieldSourceEventID, v))
}

// SourceEventIDIn applies the In predicate on the "source_event_id" field.
func SourceEventIDIn(vs ...string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldIn(FieldSourceEventID, vs...))
}

// SourceEventIDNotIn applies the NotIn predicate on the "source_event_id" field.
func SourceEventIDNotIn(vs ...string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNotIn(FieldSourceEventID, vs...))
}

// SourceEventIDGT applies the GT predicate on the "source_event_id" field.
func SourceEventIDGT(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGT(FieldSourceEventID, v))
}

// SourceEventIDGTE applies the GTE predicate on the "source_event_id" field.
func SourceEventIDGTE(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGTE(FieldSourceEventID, v))
}

// SourceEventIDLT applies the LT predicate on the "source_event_id" field.
func SourceEventIDLT(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLT(FieldSourceEventID, v))
}

// SourceEventIDLTE applies the LTE predicate on the "source_event_id" field.
func SourceEventIDLTE(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLTE(FieldSourceEventID, v))
}

// SourceEventIDContains applies the Contains predicate on the "source_event_id" field.
func SourceEventIDContains(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldContains(FieldSourceEventID, v))
}

// SourceEventIDHasPrefix applies the HasPrefix predicate on the "source_event_id" field.
func SourceEventIDHasPrefix(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldHasPrefix(FieldSourceEventID, v))
}

// SourceEventIDHasSuffix applies the HasSuffix predicate on the "source_event_id" field.
func SourceEventIDHasSuffix(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldHasSuffix(FieldSourceEventID, v))
}

// SourceEventIDIsNil applies the IsNil predicate on the "source_event_id" field.
func SourceEventIDIsNil() predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldIsNull(FieldSourceEventID))
}

// SourceEventIDNotNil applies the NotNil predicate on the "source_event_id" field.
func SourceEventIDNotNil() predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNotNull(FieldSourceEventID))
}

// SourceEventIDEqualFold applies the EqualFold predicate on the "source_event_id" field.
func SourceEventIDEqualFold(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEqualFold(FieldSourceEventID, v))
}

// SourceEventIDContainsFold applies the ContainsFold predicate on the "source_event_id" field.
func SourceEventIDContainsFold(v string) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldContainsFold(FieldSourceEventID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TokenUsageLog) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TokenUsageLog) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TokenUsageLog) predicate.TokenUsageLog {
	return predicate.TokenUsageLog(sql.NotPredicates(p))
}
