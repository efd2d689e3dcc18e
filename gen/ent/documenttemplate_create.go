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
	"github.com/docuvault/docintel/gen/ent/documenttemplate"
	"github.com/google/uuid"
)

// DocumentTemplateCreate is the builder for creating a DocumentTemplate entity.
type DocumentTemplateCreate struct {
	config
	mutation *DocumentTemplateMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *DocumentTemplateCreate) SetName(v string) *DocumentTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *DocumentTemplateCreate) SetDocumentType(v string) *DocumentTemplateCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *DocumentTemplateCreate) SetLanguage(v string) *DocumentTemplateCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *DocumentTemplateCreate) SetNillableLanguage(v *string) *DocumentTemplateCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetPatterns sets the "patterns" field.
func (_c *DocumentTemplateCreate) SetPatterns(v json.RawMessage) *DocumentTemplateCreate {
	_c.mutation.SetPatterns(v)
	return _c
}

// SetExtractionRules sets the "extraction_rules" field.
func (_c *DocumentTemplateCreate) SetExtractionRules(v json.RawMessage) *DocumentTemplateCreate {
	_c.mutation.SetExtractionRules(v)
	return _c
}

// SetValidationRules sets the "validation_rules" field.
func (_c *DocumentTemplateCreate) SetValidationRules(v json.RawMessage) *DocumentTemplateCreate {
	_c.mutation.SetValidationRules(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *DocumentTemplateCreate) SetIsActive(v bool) *DocumentTemplateCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *DocumentTemplateCreate) SetNillableIsActive(v *bool) *DocumentTemplateCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentTemplateCreate) SetCreatedAt(v time.Time) *DocumentTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentTemplateCreate) SetNillableCreatedAt(v *time.Time) *DocumentTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentTemplateCreate) SetUpdatedAt(v time.Time) *DocumentTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentTemplateCreate) SetNillableUpdatedAt(v *time.Time) *DocumentTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentTemplateCreate) SetID(v uuid.UUID) *DocumentTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentTemplateCreate) SetNillableID(v *uuid.UUID) *DocumentTemplateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DocumentTemplateMutation object of the builder.
func (_c *DocumentTemplateCreate) Mutation() *DocumentTemplateMutation {
	return _c.mutation
}

// Save creates the DocumentTemplate in the database.
func (_c *DocumentTemplateCreate) Save(ctx context.Context) (*DocumentTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentTemplateCreate) SaveX(ctx context.Context) *DocumentTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentTemplateCreate) defaults() {
	if _, ok := _c.mutation.Language(); !ok {
		v := documenttemplate.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := documenttemplate.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documenttemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := documenttemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := documenttemplate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentTemplateCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DocumentTemplate.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := documenttemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DocumentTemplate.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "DocumentTemplate.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := documenttemplate.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "DocumentTemplate.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "DocumentTemplate.language"`)}
	}
	if _, ok := _c.mutation.Patterns(); !ok {
		return &ValidationError{Name: "patterns", err: errors.New(`ent: missing required field "DocumentTemplate.patterns"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "DocumentTemplate.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentTemplate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DocumentTemplate.updated_at"`)}
	}
	return nil
}

func (_c *DocumentTemplateCreate) sqlSave(ctx context.Context) (*DocumentTemplate, error) {
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

func (_c *DocumentTemplateCreate) createSpec() (*DocumentTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documenttemplate.Table, sqlgraph.NewFieldSpec(documenttemplate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(documenttemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(documenttemplate.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(documenttemplate.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Patterns(); ok {
		_spec.SetField(documenttemplate.FieldPatterns, field.TypeJSON, value)
		_node.Patterns = value
	}
	if value, ok := _c.mutation.ExtractionRules(); ok {
		_spec.SetField(documenttemplate.FieldExtractionRules, field.TypeJSON, value)
		_node.ExtractionRules = value
	}
	if value, ok := _c.mutation.ValidationRules(); ok {
		_spec.SetField(documenttemplate.FieldValidationRules, field.TypeJSON, value)
		_node.ValidationRules = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(documenttemplate.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documenttemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(documenttemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DocumentTemplateCreateBulk is the builder for creating many DocumentTemplate entities in bulk.
type DocumentTemplateCreateBulk struct {
	config
	err      error
	builders []*DocumentTemplateCreate
}

// Save creates the DocumentTemplate entities in the database.
func (_c *DocumentTemplateCreateBulk) Save(ctx context.Context) ([]*DocumentTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentTemplateMutation)
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
func (_c *DocumentTemplateCreateBulk) SaveX(ctx context.Context) []*DocumentTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
