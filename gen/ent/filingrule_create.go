// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docuvault/docintel/gen/ent/filingrule"
	"github.com/google/uuid"
)

// FilingRuleCreate is the builder for creating a FilingRule entity.
type FilingRuleCreate struct {
	config
	mutation *FilingRuleMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *FilingRuleCreate) SetName(v string) *FilingRuleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *FilingRuleCreate) SetPriority(v int) *FilingRuleCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *FilingRuleCreate) SetNillablePriority(v *int) *FilingRuleCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *FilingRuleCreate) SetIsActive(v bool) *FilingRuleCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *FilingRuleCreate) SetNillableIsActive(v *bool) *FilingRuleCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetApplicableDocumentTypes sets the "applicable_document_types" field.
func (_c *FilingRuleCreate) SetApplicableDocumentTypes(v []string) *FilingRuleCreate {
	_c.mutation.SetApplicableDocumentTypes(v)
	return _c
}

// SetConditions sets the "conditions" field.
func (_c *FilingRuleCreate) SetConditions(v json.RawMessage) *FilingRuleCreate {
	_c.mutation.SetConditions(v)
	return _c
}

// SetActions sets the "actions" field.
func (_c *FilingRuleCreate) SetActions(v json.RawMessage) *FilingRuleCreate {
	_c.mutation.SetActions(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FilingRuleCreate) SetCreatedAt(v time.Time) *FilingRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FilingRuleCreate) SetNillableCreatedAt(v *time.Time) *FilingRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FilingRuleCreate) SetUpdatedAt(v time.Time) *FilingRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FilingRuleCreate) SetNillableUpdatedAt(v *time.Time) *FilingRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FilingRuleCreate) SetID(v uuid.UUID) *FilingRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FilingRuleCreate) SetNillableID(v *uuid.UUID) *FilingRuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the FilingRuleMutation object of the builder.
func (_c *FilingRuleCreate) Mutation() *FilingRuleMutation {
	return _c.mutation
}

// Save creates the FilingRule in the database.
func (_c *FilingRuleCreate) Save(ctx context.Context) (*FilingRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FilingRuleCreate) SaveX(ctx context.Context) *FilingRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FilingRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FilingRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FilingRuleCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := filingrule.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := filingrule.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := filingrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := filingrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := filingrule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FilingRuleCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "FilingRule.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := filingrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FilingRule.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "FilingRule.priority"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "FilingRule.is_active"`)}
	}
	if _, ok := _c.mutation.Conditions(); !ok {
		return &ValidationError{Name: "conditions", err: errors.New(`ent: missing required field "FilingRule.conditions"`)}
	}
	if _, ok := _c.mutation.Actions(); !ok {
		return &ValidationError{Name: "actions", err: errors.New(`ent: missing required field "FilingRule.actions"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FilingRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FilingRule.updated_at"`)}
	}
	return nil
}

func (_c *FilingRuleCreate) sqlSave(ctx context.Context) (*FilingRule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FilingRuleCreate) createSpec() (*FilingRule, *sqlgraph.CreateSpec) {
	var (
		_node = &FilingRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(filingrule.Table, sqlgraph.NewFieldSpec(filingrule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(filingrule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(filingrule.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(filingrule.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.ApplicableDocumentTypes(); ok {
		_spec.SetField(filingrule.FieldApplicableDocumentTypes, field.TypeJSON, value)
		_node.ApplicableDocumentTypes = value
	}
	if value, ok := _c.mutation.Conditions(); ok {
		_spec.SetField(filingrule.FieldConditions, field.TypeJSON, value)
		_node.Conditions = value
	}
	if value, ok := _c.mutation.Actions(); ok {
		_spec.SetField(filingrule.FieldActions, field.TypeJSON, value)
		_node.Actions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(filingrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(filingrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// FilingRuleCreateBulk is the builder for creating many FilingRule entities in bulk.
type FilingRuleCreateBulk struct {
	config
	err      error
	builders []*FilingRuleCreate
}

// Save creates the FilingRule entities in the database.
func (_c *FilingRuleCreateBulk) Save(ctx context.Context) ([]*FilingRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FilingRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FilingRuleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FilingRuleCreateBulk) SaveX(ctx context.Context) []*FilingRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FilingRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FilingRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
