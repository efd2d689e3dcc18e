// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docuvault/docintel/gen/ent/document"
	"github.com/docuvault/docintel/gen/ent/predicate"
	"github.com/docuvault/docintel/gen/ent/processjob"
	"github.com/google/uuid"
)

// ProcessJobUpdate is the builder for updating ProcessJob entities.
type ProcessJobUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessJobMutation
}

// Where appends a list predicates to the ProcessJobUpdate builder.
func (_u *ProcessJobUpdate) Where(ps ...predicate.ProcessJob) *ProcessJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessJobUpdate) SetDocumentID(v uuid.UUID) *ProcessJobUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessJobUpdate) SetNillableDocumentID(v *uuid.UUID) *ProcessJobUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *ProcessJobUpdate) SetTenantID(v uuid.UUID) *ProcessJobUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *ProcessJobUpdate) SetNillableTenantID(v *uuid.UUID) *ProcessJobUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessJobUpdate) SetStatus(v string) *ProcessJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessJobUpdate) SetNillableStatus(v *string) *ProcessJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ProcessJobUpdate) SetStage(v string) *ProcessJobUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ProcessJobUpdate) SetNillableStage(v *string) *ProcessJobUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *ProcessJobUpdate) ClearStage() *ProcessJobUpdate {
	_u.mutation.ClearStage()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ProcessJobUpdate) SetConfidence(v float32) *ProcessJobUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ProcessJobUpdate) SetNillableConfidence(v *float32) *ProcessJobUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ProcessJobUpdate) AddConfidence(v float32) *ProcessJobUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ProcessJobUpdate) ClearConfidence() *ProcessJobUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ProcessJobUpdate) SetTemplateID(v uuid.UUID) *ProcessJobUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ProcessJobUpdate) SetNillableTemplateID(v *uuid.UUID) *ProcessJobUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *ProcessJobUpdate) ClearTemplateID() *ProcessJobUpdate {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessJobUpdate) SetErrorMessage(v string) *ProcessJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessJobUpdate) SetNillableErrorMessage(v *string) *ProcessJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessJobUpdate) ClearErrorMessage() *ProcessJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessJobUpdate) SetStartedAt(v time.Time) *ProcessJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessJobUpdate) SetNillableStartedAt(v *time.Time) *ProcessJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProcessJobUpdate) ClearStartedAt() *ProcessJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ProcessJobUpdate) SetFinishedAt(v time.Time) *ProcessJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ProcessJobUpdate) SetNillableFinishedAt(v *time.Time) *ProcessJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ProcessJobUpdate) ClearFinishedAt() *ProcessJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProcessJobUpdate) SetCreatedAt(v time.Time) *ProcessJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProcessJobUpdate) SetNillableCreatedAt(v *time.Time) *ProcessJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessJobUpdate) SetUpdatedAt(v time.Time) *ProcessJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ProcessJobUpdate) SetDocument(v *Document) *ProcessJobUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ProcessJobMutation object of the builder.
func (_u *ProcessJobUpdate) Mutation() *ProcessJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ProcessJobUpdate) ClearDocument() *ProcessJobUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessJob.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessJob.document"`)
	}
	return nil
}

func (_u *ProcessJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processjob.Table, processjob.Columns, sqlgraph.NewFieldSpec(processjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(processjob.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(processjob.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(processjob.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(processjob.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(processjob.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(processjob.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(processjob.FieldTemplateID, field.TypeUUID, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(processjob.FieldTemplateID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(processjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(processjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(processjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(processjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processjob.DocumentTable,
			Columns: []string{processjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processjob.DocumentTable,
			Columns: []string{processjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessJobUpdateOne is the builder for updating a single ProcessJob entity.
type ProcessJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessJobMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessJobUpdateOne) SetDocumentID(v uuid.UUID) *ProcessJobUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessJobUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ProcessJobUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *ProcessJobUpdateOne) SetTenantID(v uuid.UUID) *ProcessJobUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *ProcessJobUpdateOne) SetNillableTenantID(v *uuid.UUID) *ProcessJobUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessJobUpdateOne) SetStatus(v string) *ProcessJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessJobUpdateOne) SetNillableStatus(v *string) *ProcessJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ProcessJobUpdateOne) SetStage(v string) *ProcessJobUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ProcessJobUpdateOne) SetNillableStage(v *string) *ProcessJobUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *ProcessJobUpdateOne) ClearStage() *ProcessJobUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ProcessJobUpdateOne) SetConfidence(v float32) *ProcessJobUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ProcessJobUpdateOne) SetNillableConfidence(v *float32) *ProcessJobUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ProcessJobUpdateOne) AddConfidence(v float32) *ProcessJobUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ProcessJobUpdateOne) ClearConfidence() *ProcessJobUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ProcessJobUpdateOne) SetTemplateID(v uuid.UUID) *ProcessJobUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ProcessJobUpdateOne) SetNillableTemplateID(v *uuid.UUID) *ProcessJobUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *ProcessJobUpdateOne) ClearTemplateID() *ProcessJobUpdateOne {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessJobUpdateOne) SetErrorMessage(v string) *ProcessJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessJobUpdateOne) SetNillableErrorMessage(v *string) *ProcessJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessJobUpdateOne) ClearErrorMessage() *ProcessJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessJobUpdateOne) SetStartedAt(v time.Time) *ProcessJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessJobUpdateOne) SetNillableStartedAt(v *time.Time) *ProcessJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProcessJobUpdateOne) ClearStartedAt() *ProcessJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ProcessJobUpdateOne) SetFinishedAt(v time.Time) *ProcessJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ProcessJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ProcessJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ProcessJobUpdateOne) ClearFinishedAt() *ProcessJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProcessJobUpdateOne) SetCreatedAt(v time.Time) *ProcessJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProcessJobUpdateOne) SetNillableCreatedAt(v *time.Time) *ProcessJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProcessJobUpdateOne) SetUpdatedAt(v time.Time) *ProcessJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ProcessJobUpdateOne) SetDocument(v *Document) *ProcessJobUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ProcessJobMutation object of the builder.
func (_u *ProcessJobUpdateOne) Mutation() *ProcessJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ProcessJobUpdateOne) ClearDocument() *ProcessJobUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ProcessJobUpdate builder.
func (_u *ProcessJobUpdateOne) Where(ps ...predicate.ProcessJob) *ProcessJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessJobUpdateOne) Select(field string, fields ...string) *ProcessJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessJob entity.
func (_u *ProcessJobUpdateOne) Save(ctx context.Context) (*ProcessJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessJobUpdateOne) SaveX(ctx context.Context) *ProcessJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := processjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessJob.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessJob.document"`)
	}
	return nil
}

func (_u *ProcessJobUpdateOne) sqlSave(ctx context.Context) (_node *ProcessJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processjob.Table, processjob.Columns, sqlgraph.NewFieldSpec(processjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processjob.FieldID)
		for _, f := range fields {
			if !processjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processjob.FieldID {
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
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(processjob.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(processjob.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(processjob.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(processjob.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(processjob.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(processjob.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(processjob.FieldTemplateID, field.TypeUUID, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(processjob.FieldTemplateID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(processjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(processjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(processjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(processjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(processjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processjob.DocumentTable,
			Columns: []string{processjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processjob.DocumentTable,
			Columns: []string{processjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
