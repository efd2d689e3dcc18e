// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docuvault/docintel/gen/ent/filingrule"
	"github.com/docuvault/docintel/gen/ent/predicate"
)

// FilingRuleUpdate is the builder for updating FilingRule entities.
type FilingRuleUpdate struct {
	config
	hooks    []Hook
	mutation *FilingRuleMutation
}

// Where appends a list predicates to the FilingRuleUpdate builder.
func (_u *FilingRuleUpdate) Where(ps ...predicate.FilingRule) *FilingRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *FilingRuleUpdate) SetName(v string) *FilingRuleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FilingRuleUpdate) SetNillableName(v *string) *FilingRuleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *FilingRuleUpdate) SetPriority(v int) *FilingRuleUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *FilingRuleUpdate) SetNillablePriority(v *int) *FilingRuleUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *FilingRuleUpdate) AddPriority(v int) *FilingRuleUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FilingRuleUpdate) SetIsActive(v bool) *FilingRuleUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FilingRuleUpdate) SetNillableIsActive(v *bool) *FilingRuleUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetApplicableDocumentTypes sets the "applicable_document_types" field.
func (_u *FilingRuleUpdate) SetApplicableDocumentTypes(v []string) *FilingRuleUpdate {
	_u.mutation.SetApplicableDocumentTypes(v)
	return _u
}

// AppendApplicableDocumentTypes appends value to the "applicable_document_types" field.
func (_u *FilingRuleUpdate) AppendApplicableDocumentTypes(v []string) *FilingRuleUpdate {
	_u.mutation.AppendApplicableDocumentTypes(v)
	return _u
}

// ClearApplicableDocumentTypes clears the value of the "applicable_document_types" field.
func (_u *FilingRuleUpdate) ClearApplicableDocumentTypes() *FilingRuleUpdate {
	_u.mutation.ClearApplicableDocumentTypes()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *FilingRuleUpdate) SetConditions(v json.RawMessage) *FilingRuleUpdate {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *FilingRuleUpdate) AppendConditions(v json.RawMessage) *FilingRuleUpdate {
	_u.mutation.AppendConditions(v)
	return _u
}

// SetActions sets the "actions" field.
func (_u *FilingRuleUpdate) SetActions(v json.RawMessage) *FilingRuleUpdate {
	_u.mutation.SetActions(v)
	return _u
}

// AppendActions appends value to the "actions" field.
func (_u *FilingRuleUpdate) AppendActions(v json.RawMessage) *FilingRuleUpdate {
	_u.mutation.AppendActions(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FilingRuleUpdate) SetCreatedAt(v time.Time) *FilingRuleUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FilingRuleUpdate) SetNillableCreatedAt(v *time.Time) *FilingRuleUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FilingRuleUpdate) SetUpdatedAt(v time.Time) *FilingRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FilingRuleMutation object of the builder.
func (_u *FilingRuleUpdate) Mutation() *FilingRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FilingRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FilingRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FilingRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FilingRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FilingRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := filingrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FilingRuleUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := filingrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FilingRule.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FilingRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filingrule.Table, filingrule.Columns, sqlgraph.NewFieldSpec(filingrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(filingrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(filingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(filingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(filingrule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApplicableDocumentTypes(); ok {
		_spec.SetField(filingrule.FieldApplicableDocumentTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApplicableDocumentTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, filingrule.FieldApplicableDocumentTypes, value)
		})
	}
	if _u.mutation.ApplicableDocumentTypesCleared() {
		_spec.ClearField(filingrule.FieldApplicableDocumentTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(filingrule.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, filingrule.FieldConditions, value)
		})
	}
	if value, ok := _u.mutation.Actions(); ok {
		_spec.SetField(filingrule.FieldActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, filingrule.FieldActions, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(filingrule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(filingrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filingrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FilingRuleUpdateOne is the builder for updating a single FilingRule entity.
type FilingRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FilingRuleMutation
}

// SetName sets the "name" field.
func (_u *FilingRuleUpdateOne) SetName(v string) *FilingRuleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FilingRuleUpdateOne) SetNillableName(v *string) *FilingRuleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *FilingRuleUpdateOne) SetPriority(v int) *FilingRuleUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *FilingRuleUpdateOne) SetNillablePriority(v *int) *FilingRuleUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *FilingRuleUpdateOne) AddPriority(v int) *FilingRuleUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *FilingRuleUpdateOne) SetIsActive(v bool) *FilingRuleUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *FilingRuleUpdateOne) SetNillableIsActive(v *bool) *FilingRuleUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetApplicableDocumentTypes sets the "applicable_document_types" field.
func (_u *FilingRuleUpdateOne) SetApplicableDocumentTypes(v []string) *FilingRuleUpdateOne {
	_u.mutation.SetApplicableDocumentTypes(v)
	return _u
}

// AppendApplicableDocumentTypes appends value to the "applicable_document_types" field.
func (_u *FilingRuleUpdateOne) AppendApplicableDocumentTypes(v []string) *FilingRuleUpdateOne {
	_u.mutation.AppendApplicableDocumentTypes(v)
	return _u
}

// ClearApplicableDocumentTypes clears the value of the "applicable_document_types" field.
func (_u *FilingRuleUpdateOne) ClearApplicableDocumentTypes() *FilingRuleUpdateOne {
	_u.mutation.ClearApplicableDocumentTypes()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *FilingRuleUpdateOne) SetConditions(v json.RawMessage) *FilingRuleUpdateOne {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *FilingRuleUpdateOne) AppendConditions(v json.RawMessage) *FilingRuleUpdateOne {
	_u.mutation.AppendConditions(v)
	return _u
}

// SetActions sets the "actions" field.
func (_u *FilingRuleUpdateOne) SetActions(v json.RawMessage) *FilingRuleUpdateOne {
	_u.mutation.SetActions(v)
	return _u
}

// AppendActions appends value to the "actions" field.
func (_u *FilingRuleUpdateOne) AppendActions(v json.RawMessage) *FilingRuleUpdateOne {
	_u.mutation.AppendActions(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FilingRuleUpdateOne) SetCreatedAt(v time.Time) *FilingRuleUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FilingRuleUpdateOne) SetNillableCreatedAt(v *time.Time) *FilingRuleUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FilingRuleUpdateOne) SetUpdatedAt(v time.Time) *FilingRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FilingRuleMutation object of the builder.
func (_u *FilingRuleUpdateOne) Mutation() *FilingRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the FilingRuleUpdate builder.
func (_u *FilingRuleUpdateOne) Where(ps ...predicate.FilingRule) *FilingRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FilingRuleUpdateOne) Select(field string, fields ...string) *FilingRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FilingRule entity.
func (_u *FilingRuleUpdateOne) Save(ctx context.Context) (*FilingRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FilingRuleUpdateOne) SaveX(ctx context.Context) *FilingRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FilingRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FilingRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FilingRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := filingrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FilingRuleUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := filingrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FilingRule.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FilingRuleUpdateOne) sqlSave(ctx context.Context) (_node *FilingRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filingrule.Table, filingrule.Columns, sqlgraph.NewFieldSpec(filingrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FilingRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filingrule.FieldID)
		for _, f := range fields {
			if !filingrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != filingrule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(filingrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(filingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(filingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(filingrule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ApplicableDocumentTypes(); ok {
		_spec.SetField(filingrule.FieldApplicableDocumentTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedApplicableDocumentTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, filingrule.FieldApplicableDocumentTypes, value)
		})
	}
	if _u.mutation.ApplicableDocumentTypesCleared() {
		_spec.ClearField(filingrule.FieldApplicableDocumentTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(filingrule.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, filingrule.FieldConditions, value)
		})
	}
	if value, ok := _u.mutation.Actions(); ok {
		_spec.SetField(filingrule.FieldActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, filingrule.FieldActions, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(filingrule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(filingrule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FilingRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filingrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
