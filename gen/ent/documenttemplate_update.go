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
	"github.com/docuvault/docintel/gen/ent/documenttemplate"
	"github.com/docuvault/docintel/gen/ent/predicate"
)

// DocumentTemplateUpdate is the builder for updating DocumentTemplate entities.
type DocumentTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentTemplateMutation
}

// Where appends a list predicates to the DocumentTemplateUpdate builder.
func (_u *DocumentTemplateUpdate) Where(ps ...predicate.DocumentTemplate) *DocumentTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *DocumentTemplateUpdate) SetName(v string) *DocumentTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DocumentTemplateUpdate) SetNillableName(v *string) *DocumentTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentTemplateUpdate) SetDocumentType(v string) *DocumentTemplateUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentTemplateUpdate) SetNillableDocumentType(v *string) *DocumentTemplateUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *DocumentTemplateUpdate) SetLanguage(v string) *DocumentTemplateUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *DocumentTemplateUpdate) SetNillableLanguage(v *string) *DocumentTemplateUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetPatterns sets the "patterns" field.
func (_u *DocumentTemplateUpdate) SetPatterns(v json.RawMessage) *DocumentTemplateUpdate {
	_u.mutation.SetPatterns(v)
	return _u
}

// AppendPatterns appends value to the "patterns" field.
func (_u *DocumentTemplateUpdate) AppendPatterns(v json.RawMessage) *DocumentTemplateUpdate {
	_u.mutation.AppendPatterns(v)
	return _u
}

// SetExtractionRules sets the "extraction_rules" field.
func (_u *DocumentTemplateUpdate) SetExtractionRules(v json.RawMessage) *DocumentTemplateUpdate {
	_u.mutation.SetExtractionRules(v)
	return _u
}

// AppendExtractionRules appends value to the "extraction_rules" field.
func (_u *DocumentTemplateUpdate) AppendExtractionRules(v json.RawMessage) *DocumentTemplateUpdate {
	_u.mutation.AppendExtractionRules(v)
	return _u
}

// ClearExtractionRules clears the value of the "extraction_rules" field.
func (_u *DocumentTemplateUpdate) ClearExtractionRules() *DocumentTemplateUpdate {
	_u.mutation.ClearExtractionRules()
	return _u
}

// SetValidationRules sets the "validation_rules" field.
func (_u *DocumentTemplateUpdate) SetValidationRules(v json.RawMessage) *DocumentTemplateUpdate {
	_u.mutation.SetValidationRules(v)
	return _u
}

// AppendValidationRules appends value to the "validation_rules" field.
func (_u *DocumentTemplateUpdate) AppendValidationRules(v json.RawMessage) *DocumentTemplateUpdate {
	_u.mutation.AppendValidationRules(v)
	return _u
}

// ClearValidationRules clears the value of the "validation_rules" field.
func (_u *DocumentTemplateUpdate) ClearValidationRules() *DocumentTemplateUpdate {
	_u.mutation.ClearValidationRules()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DocumentTemplateUpdate) SetIsActive(v bool) *DocumentTemplateUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DocumentTemplateUpdate) SetNillableIsActive(v *bool) *DocumentTemplateUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentTemplateUpdate) SetCreatedAt(v time.Time) *DocumentTemplateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentTemplateUpdate) SetNillableCreatedAt(v *time.Time) *DocumentTemplateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentTemplateUpdate) SetUpdatedAt(v time.Time) *DocumentTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DocumentTemplateMutation object of the builder.
func (_u *DocumentTemplateUpdate) Mutation() *DocumentTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documenttemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentTemplateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := documenttemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DocumentTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := documenttemplate.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "DocumentTemplate.document_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documenttemplate.Table, documenttemplate.Columns, sqlgraph.NewFieldSpec(documenttemplate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(documenttemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(documenttemplate.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(documenttemplate.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Patterns(); ok {
		_spec.SetField(documenttemplate.FieldPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documenttemplate.FieldPatterns, value)
		})
	}
	if value, ok := _u.mutation.ExtractionRules(); ok {
		_spec.SetField(documenttemplate.FieldExtractionRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractionRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documenttemplate.FieldExtractionRules, value)
		})
	}
	if _u.mutation.ExtractionRulesCleared() {
		_spec.ClearField(documenttemplate.FieldExtractionRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidationRules(); ok {
		_spec.SetField(documenttemplate.FieldValidationRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documenttemplate.FieldValidationRules, value)
		})
	}
	if _u.mutation.ValidationRulesCleared() {
		_spec.ClearField(documenttemplate.FieldValidationRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(documenttemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(documenttemplate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documenttemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documenttemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentTemplateUpdateOne is the builder for updating a single DocumentTemplate entity.
type DocumentTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentTemplateMutation
}

// SetName sets the "name" field.
func (_u *DocumentTemplateUpdateOne) SetName(v string) *DocumentTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DocumentTemplateUpdateOne) SetNillableName(v *string) *DocumentTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentTemplateUpdateOne) SetDocumentType(v string) *DocumentTemplateUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentTemplateUpdateOne) SetNillableDocumentType(v *string) *DocumentTemplateUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *DocumentTemplateUpdateOne) SetLanguage(v string) *DocumentTemplateUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *DocumentTemplateUpdateOne) SetNillableLanguage(v *string) *DocumentTemplateUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetPatterns sets the "patterns" field.
func (_u *DocumentTemplateUpdateOne) SetPatterns(v json.RawMessage) *DocumentTemplateUpdateOne {
	_u.mutation.SetPatterns(v)
	return _u
}

// AppendPatterns appends value to the "patterns" field.
func (_u *DocumentTemplateUpdateOne) AppendPatterns(v json.RawMessage) *DocumentTemplateUpdateOne {
	_u.mutation.AppendPatterns(v)
	return _u
}

// SetExtractionRules sets the "extraction_rules" field.
func (_u *DocumentTemplateUpdateOne) SetExtractionRules(v json.RawMessage) *DocumentTemplateUpdateOne {
	_u.mutation.SetExtractionRules(v)
	return _u
}

// AppendExtractionRules appends value to the "extraction_rules" field.
func (_u *DocumentTemplateUpdateOne) AppendExtractionRules(v json.RawMessage) *DocumentTemplateUpdateOne {
	_u.mutation.AppendExtractionRules(v)
	return _u
}

// ClearExtractionRules clears the value of the "extraction_rules" field.
func (_u *DocumentTemplateUpdateOne) ClearExtractionRules() *DocumentTemplateUpdateOne {
	_u.mutation.ClearExtractionRules()
	return _u
}

// SetValidationRules sets the "validation_rules" field.
func (_u *DocumentTemplateUpdateOne) SetValidationRules(v json.RawMessage) *DocumentTemplateUpdateOne {
	_u.mutation.SetValidationRules(v)
	return _u
}

// AppendValidationRules appends value to the "validation_rules" field.
func (_u *DocumentTemplateUpdateOne) AppendValidationRules(v json.RawMessage) *DocumentTemplateUpdateOne {
	_u.mutation.AppendValidationRules(v)
	return _u
}

// ClearValidationRules clears the value of the "validation_rules" field.
func (_u *DocumentTemplateUpdateOne) ClearValidationRules() *DocumentTemplateUpdateOne {
	_u.mutation.ClearValidationRules()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DocumentTemplateUpdateOne) SetIsActive(v bool) *DocumentTemplateUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DocumentTemplateUpdateOne) SetNillableIsActive(v *bool) *DocumentTemplateUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentTemplateUpdateOne) SetCreatedAt(v time.Time) *DocumentTemplateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentTemplateUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentTemplateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentTemplateUpdateOne) SetUpdatedAt(v time.Time) *DocumentTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DocumentTemplateMutation object of the builder.
func (_u *DocumentTemplateUpdateOne) Mutation() *DocumentTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentTemplateUpdate builder.
func (_u *DocumentTemplateUpdateOne) Where(ps ...predicate.DocumentTemplate) *DocumentTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentTemplateUpdateOne) Select(field string, fields ...string) *DocumentTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentTemplate entity.
func (_u *DocumentTemplateUpdateOne) Save(ctx context.Context) (*DocumentTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentTemplateUpdateOne) SaveX(ctx context.Context) *DocumentTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documenttemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := documenttemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DocumentTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := documenttemplate.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "DocumentTemplate.document_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentTemplateUpdateOne) sqlSave(ctx context.Context) (_node *DocumentTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documenttemplate.Table, documenttemplate.Columns, sqlgraph.NewFieldSpec(documenttemplate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documenttemplate.FieldID)
		for _, f := range fields {
			if !documenttemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documenttemplate.FieldID {
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
		_spec.SetField(documenttemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(documenttemplate.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(documenttemplate.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Patterns(); ok {
		_spec.SetField(documenttemplate.FieldPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documenttemplate.FieldPatterns, value)
		})
	}
	if value, ok := _u.mutation.ExtractionRules(); ok {
		_spec.SetField(documenttemplate.FieldExtractionRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractionRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documenttemplate.FieldExtractionRules, value)
		})
	}
	if _u.mutation.ExtractionRulesCleared() {
		_spec.ClearField(documenttemplate.FieldExtractionRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidationRules(); ok {
		_spec.SetField(documenttemplate.FieldValidationRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documenttemplate.FieldValidationRules, value)
		})
	}
	if _u.mutation.ValidationRulesCleared() {
		_spec.ClearField(documenttemplate.FieldValidationRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(documenttemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(documenttemplate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documenttemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DocumentTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documenttemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
