// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docuvault/docintel/gen/ent/document"
	"github.com/docuvault/docintel/gen/ent/documenttemplate"
	"github.com/docuvault/docintel/gen/ent/filingrule"
	"github.com/docuvault/docintel/gen/ent/predicate"
	"github.com/docuvault/docintel/gen/ent/processjob"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument         = "Document"
	TypeDocumentTemplate = "DocumentTemplate"
	TypeFilingRule       = "FilingRule"
	TypeProcessJob       = "ProcessJob"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	tenant_id      *uuid.UUID
	file_name      *string
	file_path      *string
	document_type  *string
	language       *string
	status         *string
	classification *string
	tags           *[]string
	appendtags     []string
	metadata       *json.RawMessage
	appendmetadata json.RawMessage
	client_id      *string
	portfolio_id   *string
	document_date  *time.Time
	content_hash   *[]byte
	file_size      *int
	addfile_size   *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	jobs           map[uuid.UUID]struct{}
	removedjobs    map[uuid.UUID]struct{}
	clearedjobs    bool
	done           bool
	oldValue       func(context.Context) (*Document, error)
	predicates     []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *DocumentMutation) SetTenantID(u uuid.UUID) {
	m.tenant_id = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *DocumentMutation) TenantID() (r uuid.UUID, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTenantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *DocumentMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetFileName sets the "file_name" field.
func (m *DocumentMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *DocumentMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *DocumentMutation) ResetFileName() {
	m.file_name = nil
}

// SetFilePath sets the "file_path" field.
func (m *DocumentMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *DocumentMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *DocumentMutation) ResetFilePath() {
	m.file_path = nil
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetLanguage sets the "language" field.
func (m *DocumentMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *DocumentMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *DocumentMutation) ResetLanguage() {
	m.language = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *DocumentMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[document.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *DocumentMutation) StatusCleared() bool {
	_, ok := m.clearedFields[document.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, document.FieldStatus)
}

// SetClassification sets the "classification" field.
func (m *DocumentMutation) SetClassification(s string) {
	m.classification = &s
}

// Classification returns the value of the "classification" field in the mutation.
func (m *DocumentMutation) Classification() (r string, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldClassification(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ClearClassification clears the value of the "classification" field.
func (m *DocumentMutation) ClearClassification() {
	m.classification = nil
	m.clearedFields[document.FieldClassification] = struct{}{}
}

// ClassificationCleared returns if the "classification" field was cleared in this mutation.
func (m *DocumentMutation) ClassificationCleared() bool {
	_, ok := m.clearedFields[document.FieldClassification]
	return ok
}

// ResetClassification resets all changes to the "classification" field.
func (m *DocumentMutation) ResetClassification() {
	m.classification = nil
	delete(m.clearedFields, document.FieldClassification)
}

// SetTags sets the "tags" field.
func (m *DocumentMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *DocumentMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *DocumentMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *DocumentMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *DocumentMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[document.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *DocumentMutation) TagsCleared() bool {
	_, ok := m.clearedFields[document.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *DocumentMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, document.FieldTags)
}

// SetMetadata sets the "metadata" field.
func (m *DocumentMutation) SetMetadata(jm json.RawMessage) {
	m.metadata = &jm
	m.appendmetadata = nil
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *DocumentMutation) Metadata() (r json.RawMessage, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMetadata(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// AppendMetadata adds jm to the "metadata" field.
func (m *DocumentMutation) AppendMetadata(jm json.RawMessage) {
	m.appendmetadata = append(m.appendmetadata, jm...)
}

// AppendedMetadata returns the list of values that were appended to the "metadata" field in this mutation.
func (m *DocumentMutation) AppendedMetadata() (json.RawMessage, bool) {
	if len(m.appendmetadata) == 0 {
		return nil, false
	}
	return m.appendmetadata, true
}

// ClearMetadata clears the value of the "metadata" field.
func (m *DocumentMutation) ClearMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	m.clearedFields[document.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *DocumentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[document.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *DocumentMutation) ResetMetadata() {
	m.metadata = nil
	m.appendmetadata = nil
	delete(m.clearedFields, document.FieldMetadata)
}

// SetClientID sets the "client_id" field.
func (m *DocumentMutation) SetClientID(s string) {
	m.client_id = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *DocumentMutation) ClientID() (r string, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldClientID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ClearClientID clears the value of the "client_id" field.
func (m *DocumentMutation) ClearClientID() {
	m.client_id = nil
	m.clearedFields[document.FieldClientID] = struct{}{}
}

// ClientIDCleared returns if the "client_id" field was cleared in this mutation.
func (m *DocumentMutation) ClientIDCleared() bool {
	_, ok := m.clearedFields[document.FieldClientID]
	return ok
}

// ResetClientID resets all changes to the "client_id" field.
func (m *DocumentMutation) ResetClientID() {
	m.client_id = nil
	delete(m.clearedFields, document.FieldClientID)
}

// SetPortfolioID sets the "portfolio_id" field.
func (m *DocumentMutation) SetPortfolioID(s string) {
	m.portfolio_id = &s
}

// PortfolioID returns the value of the "portfolio_id" field in the mutation.
func (m *DocumentMutation) PortfolioID() (r string, exists bool) {
	v := m.portfolio_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPortfolioID returns the old "portfolio_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPortfolioID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPortfolioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPortfolioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPortfolioID: %w", err)
	}
	return oldValue.PortfolioID, nil
}

// ClearPortfolioID clears the value of the "portfolio_id" field.
func (m *DocumentMutation) ClearPortfolioID() {
	m.portfolio_id = nil
	m.clearedFields[document.FieldPortfolioID] = struct{}{}
}

// PortfolioIDCleared returns if the "portfolio_id" field was cleared in this mutation.
func (m *DocumentMutation) PortfolioIDCleared() bool {
	_, ok := m.clearedFields[document.FieldPortfolioID]
	return ok
}

// ResetPortfolioID resets all changes to the "portfolio_id" field.
func (m *DocumentMutation) ResetPortfolioID() {
	m.portfolio_id = nil
	delete(m.clearedFields, document.FieldPortfolioID)
}

// SetDocumentDate sets the "document_date" field.
func (m *DocumentMutation) SetDocumentDate(t time.Time) {
	m.document_date = &t
}

// DocumentDate returns the value of the "document_date" field in the mutation.
func (m *DocumentMutation) DocumentDate() (r time.Time, exists bool) {
	v := m.document_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentDate returns the old "document_date" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentDate: %w", err)
	}
	return oldValue.DocumentDate, nil
}

// ClearDocumentDate clears the value of the "document_date" field.
func (m *DocumentMutation) ClearDocumentDate() {
	m.document_date = nil
	m.clearedFields[document.FieldDocumentDate] = struct{}{}
}

// DocumentDateCleared returns if the "document_date" field was cleared in this mutation.
func (m *DocumentMutation) DocumentDateCleared() bool {
	_, ok := m.clearedFields[document.FieldDocumentDate]
	return ok
}

// ResetDocumentDate resets all changes to the "document_date" field.
func (m *DocumentMutation) ResetDocumentDate() {
	m.document_date = nil
	delete(m.clearedFields, document.FieldDocumentDate)
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddJobIDs adds the "jobs" edge to the ProcessJob entity by ids.
func (m *DocumentMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ProcessJob entity.
func (m *DocumentMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ProcessJob entity was cleared.
func (m *DocumentMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ProcessJob entity by IDs.
func (m *DocumentMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ProcessJob entity.
func (m *DocumentMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DocumentMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DocumentMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.tenant_id != nil {
		fields = append(fields, document.FieldTenantID)
	}
	if m.file_name != nil {
		fields = append(fields, document.FieldFileName)
	}
	if m.file_path != nil {
		fields = append(fields, document.FieldFilePath)
	}
	if m.document_type != nil {
		fields = append(fields, document.FieldDocumentType)
	}
	if m.language != nil {
		fields = append(fields, document.FieldLanguage)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.classification != nil {
		fields = append(fields, document.FieldClassification)
	}
	if m.tags != nil {
		fields = append(fields, document.FieldTags)
	}
	if m.metadata != nil {
		fields = append(fields, document.FieldMetadata)
	}
	if m.client_id != nil {
		fields = append(fields, document.FieldClientID)
	}
	if m.portfolio_id != nil {
		fields = append(fields, document.FieldPortfolioID)
	}
	if m.document_date != nil {
		fields = append(fields, document.FieldDocumentDate)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.file_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldTenantID:
		return m.TenantID()
	case document.FieldFileName:
		return m.FileName()
	case document.FieldFilePath:
		return m.FilePath()
	case document.FieldDocumentType:
		return m.DocumentType()
	case document.FieldLanguage:
		return m.Language()
	case document.FieldStatus:
		return m.Status()
	case document.FieldClassification:
		return m.Classification()
	case document.FieldTags:
		return m.Tags()
	case document.FieldMetadata:
		return m.Metadata()
	case document.FieldClientID:
		return m.ClientID()
	case document.FieldPortfolioID:
		return m.PortfolioID()
	case document.FieldDocumentDate:
		return m.DocumentDate()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldFileSize:
		return m.FileSize()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldTenantID:
		return m.OldTenantID(ctx)
	case document.FieldFileName:
		return m.OldFileName(ctx)
	case document.FieldFilePath:
		return m.OldFilePath(ctx)
	case document.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case document.FieldLanguage:
		return m.OldLanguage(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldClassification:
		return m.OldClassification(ctx)
	case document.FieldTags:
		return m.OldTags(ctx)
	case document.FieldMetadata:
		return m.OldMetadata(ctx)
	case document.FieldClientID:
		return m.OldClientID(ctx)
	case document.FieldPortfolioID:
		return m.OldPortfolioID(ctx)
	case document.FieldDocumentDate:
		return m.OldDocumentDate(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldFileSize:
		return m.OldFileSize(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldTenantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case document.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case document.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case document.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case document.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldClassification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case document.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case document.FieldMetadata:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case document.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case document.FieldPortfolioID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPortfolioID(v)
		return nil
	case document.FieldDocumentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentDate(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldStatus) {
		fields = append(fields, document.FieldStatus)
	}
	if m.FieldCleared(document.FieldClassification) {
		fields = append(fields, document.FieldClassification)
	}
	if m.FieldCleared(document.FieldTags) {
		fields = append(fields, document.FieldTags)
	}
	if m.FieldCleared(document.FieldMetadata) {
		fields = append(fields, document.FieldMetadata)
	}
	if m.FieldCleared(document.FieldClientID) {
		fields = append(fields, document.FieldClientID)
	}
	if m.FieldCleared(document.FieldPortfolioID) {
		fields = append(fields, document.FieldPortfolioID)
	}
	if m.FieldCleared(document.FieldDocumentDate) {
		fields = append(fields, document.FieldDocumentDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldStatus:
		m.ClearStatus()
		return nil
	case document.FieldClassification:
		m.ClearClassification()
		return nil
	case document.FieldTags:
		m.ClearTags()
		return nil
	case document.FieldMetadata:
		m.ClearMetadata()
		return nil
	case document.FieldClientID:
		m.ClearClientID()
		return nil
	case document.FieldPortfolioID:
		m.ClearPortfolioID()
		return nil
	case document.FieldDocumentDate:
		m.ClearDocumentDate()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldTenantID:
		m.ResetTenantID()
		return nil
	case document.FieldFileName:
		m.ResetFileName()
		return nil
	case document.FieldFilePath:
		m.ResetFilePath()
		return nil
	case document.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case document.FieldLanguage:
		m.ResetLanguage()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldClassification:
		m.ResetClassification()
		return nil
	case document.FieldTags:
		m.ResetTags()
		return nil
	case document.FieldMetadata:
		m.ResetMetadata()
		return nil
	case document.FieldClientID:
		m.ResetClientID()
		return nil
	case document.FieldPortfolioID:
		m.ResetPortfolioID()
		return nil
	case document.FieldDocumentDate:
		m.ResetDocumentDate()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldFileSize:
		m.ResetFileSize()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, document.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// DocumentTemplateMutation represents an operation that mutates the DocumentTemplate nodes in the graph.
type DocumentTemplateMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	name                   *string
	document_type          *string
	language               *string
	patterns               *json.RawMessage
	appendpatterns         json.RawMessage
	extraction_rules       *json.RawMessage
	appendextraction_rules json.RawMessage
	validation_rules       *json.RawMessage
	appendvalidation_rules json.RawMessage
	is_active              *bool
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*DocumentTemplate, error)
	predicates             []predicate.DocumentTemplate
}

var _ ent.Mutation = (*DocumentTemplateMutation)(nil)

// documenttemplateOption allows management of the mutation configuration using functional options.
type documenttemplateOption func(*DocumentTemplateMutation)

// newDocumentTemplateMutation creates new mutation for the DocumentTemplate entity.
func newDocumentTemplateMutation(c config, op Op, opts ...documenttemplateOption) *DocumentTemplateMutation {
	m := &DocumentTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentTemplateID sets the ID field of the mutation.
func withDocumentTemplateID(id uuid.UUID) documenttemplateOption {
	return func(m *DocumentTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentTemplate
		)
		m.oldValue = func(ctx context.Context) (*DocumentTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentTemplate sets the old DocumentTemplate of the mutation.
func withDocumentTemplate(node *DocumentTemplate) documenttemplateOption {
	return func(m *DocumentTemplateMutation) {
		m.oldValue = func(context.Context) (*DocumentTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentTemplate entities.
func (m *DocumentTemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentTemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentTemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *DocumentTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DocumentTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DocumentTemplate entity.
// If the DocumentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DocumentTemplateMutation) ResetName() {
	m.name = nil
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentTemplateMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentTemplateMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the DocumentTemplate entity.
// If the DocumentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTemplateMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentTemplateMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetLanguage sets the "language" field.
func (m *DocumentTemplateMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *DocumentTemplateMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the DocumentTemplate entity.
// If the DocumentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTemplateMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *DocumentTemplateMutation) ResetLanguage() {
	m.language = nil
}

// SetPatterns sets the "patterns" field.
func (m *DocumentTemplateMutation) SetPatterns(jm json.RawMessage) {
	m.patterns = &jm
	m.appendpatterns = nil
}

// Patterns returns the value of the "patterns" field in the mutation.
func (m *DocumentTemplateMutation) Patterns() (r json.RawMessage, exists bool) {
	v := m.patterns
	if v == nil {
		return
	}
	return *v, true
}

// OldPatterns returns the old "patterns" field's value of the DocumentTemplate entity.
// If the DocumentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTemplateMutation) OldPatterns(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatterns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatterns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatterns: %w", err)
	}
	return oldValue.Patterns, nil
}

// AppendPatterns adds jm to the "patterns" field.
func (m *DocumentTemplateMutation) AppendPatterns(jm json.RawMessage) {
	m.appendpatterns = append(m.appendpatterns, jm...)
}

// AppendedPatterns returns the list of values that were appended to the "patterns" field in this mutation.
func (m *DocumentTemplateMutation) AppendedPatterns() (json.RawMessage, bool) {
	if len(m.appendpatterns) == 0 {
		return nil, false
	}
	return m.appendpatterns, true
}

// ResetPatterns resets all changes to the "patterns" field.
func (m *DocumentTemplateMutation) ResetPatterns() {
	m.patterns = nil
	m.appendpatterns = nil
}

// SetExtractionRules sets the "extraction_rules" field.
func (m *DocumentTemplateMutation) SetExtractionRules(jm json.RawMessage) {
	m.extraction_rules = &jm
	m.appendextraction_rules = nil
}

// ExtractionRules returns the value of the "extraction_rules" field in the mutation.
func (m *DocumentTemplateMutation) ExtractionRules() (r json.RawMessage, exists bool) {
	v := m.extraction_rules
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionRules returns the old "extraction_rules" field's value of the DocumentTemplate entity.
// If the DocumentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTemplateMutation) OldExtractionRules(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionRules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionRules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionRules: %w", err)
	}
	return oldValue.ExtractionRules, nil
}

// AppendExtractionRules adds jm to the "extraction_rules" field.
func (m *DocumentTemplateMutation) AppendExtractionRules(jm json.RawMessage) {
	m.appendextraction_rules = append(m.appendextraction_rules, jm...)
}

// AppendedExtractionRules returns the list of values that were appended to the "extraction_rules" field in this mutation.
func (m *DocumentTemplateMutation) AppendedExtractionRules() (json.RawMessage, bool) {
	if len(m.appendextraction_rules) == 0 {
		return nil, false
	}
	return m.appendextraction_rules, true
}

// ClearExtractionRules clears the value of the "extraction_rules" field.
func (m *DocumentTemplateMutation) ClearExtractionRules() {
	m.extraction_rules = nil
	m.appendextraction_rules = nil
	m.clearedFields[documenttemplate.FieldExtractionRules] = struct{}{}
}

// ExtractionRulesCleared returns if the "extraction_rules" field was cleared in this mutation.
func (m *DocumentTemplateMutation) ExtractionRulesCleared() bool {
	_, ok := m.clearedFields[documenttemplate.FieldExtractionRules]
	return ok
}

// ResetExtractionRules resets all changes to the "extraction_rules" field.
func (m *DocumentTemplateMutation) ResetExtractionRules() {
	m.extraction_rules = nil
	m.appendextraction_rules = nil
	delete(m.clearedFields, documenttemplate.FieldExtractionRules)
}

// SetValidationRules sets the "validation_rules" field.
func (m *DocumentTemplateMutation) SetValidationRules(jm json.RawMessage) {
	m.validation_rules = &jm
	m.appendvalidation_rules = nil
}

// ValidationRules returns the value of the "validation_rules" field in the mutation.
func (m *DocumentTemplateMutation) ValidationRules() (r json.RawMessage, exists bool) {
	v := m.validation_rules
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationRules returns the old "validation_rules" field's value of the DocumentTemplate entity.
// If the DocumentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTemplateMutation) OldValidationRules(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationRules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationRules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationRules: %w", err)
	}
	return oldValue.ValidationRules, nil
}

// AppendValidationRules adds jm to the "validation_rules" field.
func (m *DocumentTemplateMutation) AppendValidationRules(jm json.RawMessage) {
	m.appendvalidation_rules = append(m.appendvalidation_rules, jm...)
}

// AppendedValidationRules returns the list of values that were appended to the "validation_rules" field in this mutation.
func (m *DocumentTemplateMutation) AppendedValidationRules() (json.RawMessage, bool) {
	if len(m.appendvalidation_rules) == 0 {
		return nil, false
	}
	return m.appendvalidation_rules, true
}

// ClearValidationRules clears the value of the "validation_rules" field.
func (m *DocumentTemplateMutation) ClearValidationRules() {
	m.validation_rules = nil
	m.appendvalidation_rules = nil
	m.clearedFields[documenttemplate.FieldValidationRules] = struct{}{}
}

// ValidationRulesCleared returns if the "validation_rules" field was cleared in this mutation.
func (m *DocumentTemplateMutation) ValidationRulesCleared() bool {
	_, ok := m.clearedFields[documenttemplate.FieldValidationRules]
	return ok
}

// ResetValidationRules resets all changes to the "validation_rules" field.
func (m *DocumentTemplateMutation) ResetValidationRules() {
	m.validation_rules = nil
	m.appendvalidation_rules = nil
	delete(m.clearedFields, documenttemplate.FieldValidationRules)
}

// SetIsActive sets the "is_active" field.
func (m *DocumentTemplateMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *DocumentTemplateMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the DocumentTemplate entity.
// If the DocumentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTemplateMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *DocumentTemplateMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentTemplate entity.
// If the DocumentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DocumentTemplate entity.
// If the DocumentTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DocumentTemplateMutation builder.
func (m *DocumentTemplateMutation) Where(ps ...predicate.DocumentTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentTemplate).
func (m *DocumentTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentTemplateMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, documenttemplate.FieldName)
	}
	if m.document_type != nil {
		fields = append(fields, documenttemplate.FieldDocumentType)
	}
	if m.language != nil {
		fields = append(fields, documenttemplate.FieldLanguage)
	}
	if m.patterns != nil {
		fields = append(fields, documenttemplate.FieldPatterns)
	}
	if m.extraction_rules != nil {
		fields = append(fields, documenttemplate.FieldExtractionRules)
	}
	if m.validation_rules != nil {
		fields = append(fields, documenttemplate.FieldValidationRules)
	}
	if m.is_active != nil {
		fields = append(fields, documenttemplate.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, documenttemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, documenttemplate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documenttemplate.FieldName:
		return m.Name()
	case documenttemplate.FieldDocumentType:
		return m.DocumentType()
	case documenttemplate.FieldLanguage:
		return m.Language()
	case documenttemplate.FieldPatterns:
		return m.Patterns()
	case documenttemplate.FieldExtractionRules:
		return m.ExtractionRules()
	case documenttemplate.FieldValidationRules:
		return m.ValidationRules()
	case documenttemplate.FieldIsActive:
		return m.IsActive()
	case documenttemplate.FieldCreatedAt:
		return m.CreatedAt()
	case documenttemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documenttemplate.FieldName:
		return m.OldName(ctx)
	case documenttemplate.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case documenttemplate.FieldLanguage:
		return m.OldLanguage(ctx)
	case documenttemplate.FieldPatterns:
		return m.OldPatterns(ctx)
	case documenttemplate.FieldExtractionRules:
		return m.OldExtractionRules(ctx)
	case documenttemplate.FieldValidationRules:
		return m.OldValidationRules(ctx)
	case documenttemplate.FieldIsActive:
		return m.OldIsActive(ctx)
	case documenttemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case documenttemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documenttemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case documenttemplate.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case documenttemplate.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case documenttemplate.FieldPatterns:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatterns(v)
		return nil
	case documenttemplate.FieldExtractionRules:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionRules(v)
		return nil
	case documenttemplate.FieldValidationRules:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationRules(v)
		return nil
	case documenttemplate.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case documenttemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case documenttemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documenttemplate.FieldExtractionRules) {
		fields = append(fields, documenttemplate.FieldExtractionRules)
	}
	if m.FieldCleared(documenttemplate.FieldValidationRules) {
		fields = append(fields, documenttemplate.FieldValidationRules)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentTemplateMutation) ClearField(name string) error {
	switch name {
	case documenttemplate.FieldExtractionRules:
		m.ClearExtractionRules()
		return nil
	case documenttemplate.FieldValidationRules:
		m.ClearValidationRules()
		return nil
	}
	return fmt.Errorf("unknown DocumentTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentTemplateMutation) ResetField(name string) error {
	switch name {
	case documenttemplate.FieldName:
		m.ResetName()
		return nil
	case documenttemplate.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case documenttemplate.FieldLanguage:
		m.ResetLanguage()
		return nil
	case documenttemplate.FieldPatterns:
		m.ResetPatterns()
		return nil
	case documenttemplate.FieldExtractionRules:
		m.ResetExtractionRules()
		return nil
	case documenttemplate.FieldValidationRules:
		m.ResetValidationRules()
		return nil
	case documenttemplate.FieldIsActive:
		m.ResetIsActive()
		return nil
	case documenttemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case documenttemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DocumentTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DocumentTemplate edge %s", name)
}

// FilingRuleMutation represents an operation that mutates the FilingRule nodes in the graph.
type FilingRuleMutation struct {
	config
	op                              Op
	typ                             string
	id                              *uuid.UUID
	name                            *string
	priority                        *int
	addpriority                     *int
	is_active                       *bool
	applicable_document_types       *[]string
	appendapplicable_document_types []string
	conditions                      *json.RawMessage
	appendconditions                json.RawMessage
	actions                         *json.RawMessage
	appendactions                   json.RawMessage
	created_at                      *time.Time
	updated_at                      *time.Time
	clearedFields                   map[string]struct{}
	done                            bool
	oldValue                        func(context.Context) (*FilingRule, error)
	predicates                      []predicate.FilingRule
}

var _ ent.Mutation = (*FilingRuleMutation)(nil)

// filingruleOption allows management of the mutation configuration using functional options.
type filingruleOption func(*FilingRuleMutation)

// newFilingRuleMutation creates new mutation for the FilingRule entity.
func newFilingRuleMutation(c config, op Op, opts ...filingruleOption) *FilingRuleMutation {
	m := &FilingRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeFilingRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFilingRuleID sets the ID field of the mutation.
func withFilingRuleID(id uuid.UUID) filingruleOption {
	return func(m *FilingRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *FilingRule
		)
		m.oldValue = func(ctx context.Context) (*FilingRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FilingRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFilingRule sets the old FilingRule of the mutation.
func withFilingRule(node *FilingRule) filingruleOption {
	return func(m *FilingRuleMutation) {
		m.oldValue = func(context.Context) (*FilingRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FilingRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FilingRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FilingRule entities.
func (m *FilingRuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FilingRuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FilingRuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FilingRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *FilingRuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FilingRuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the FilingRule entity.
// If the FilingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingRuleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FilingRuleMutation) ResetName() {
	m.name = nil
}

// SetPriority sets the "priority" field.
func (m *FilingRuleMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *FilingRuleMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the FilingRule entity.
// If the FilingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingRuleMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *FilingRuleMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *FilingRuleMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *FilingRuleMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetIsActive sets the "is_active" field.
func (m *FilingRuleMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *FilingRuleMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the FilingRule entity.
// If the FilingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingRuleMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *FilingRuleMutation) ResetIsActive() {
	m.is_active = nil
}

// SetApplicableDocumentTypes sets the "applicable_document_types" field.
func (m *FilingRuleMutation) SetApplicableDocumentTypes(s []string) {
	m.applicable_document_types = &s
	m.appendapplicable_document_types = nil
}

// ApplicableDocumentTypes returns the value of the "applicable_document_types" field in the mutation.
func (m *FilingRuleMutation) ApplicableDocumentTypes() (r []string, exists bool) {
	v := m.applicable_document_types
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicableDocumentTypes returns the old "applicable_document_types" field's value of the FilingRule entity.
// If the FilingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingRuleMutation) OldApplicableDocumentTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicableDocumentTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicableDocumentTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicableDocumentTypes: %w", err)
	}
	return oldValue.ApplicableDocumentTypes, nil
}

// AppendApplicableDocumentTypes adds s to the "applicable_document_types" field.
func (m *FilingRuleMutation) AppendApplicableDocumentTypes(s []string) {
	m.appendapplicable_document_types = append(m.appendapplicable_document_types, s...)
}

// AppendedApplicableDocumentTypes returns the list of values that were appended to the "applicable_document_types" field in this mutation.
func (m *FilingRuleMutation) AppendedApplicableDocumentTypes() ([]string, bool) {
	if len(m.appendapplicable_document_types) == 0 {
		return nil, false
	}
	return m.appendapplicable_document_types, true
}

// ClearApplicableDocumentTypes clears the value of the "applicable_document_types" field.
func (m *FilingRuleMutation) ClearApplicableDocumentTypes() {
	m.applicable_document_types = nil
	m.appendapplicable_document_types = nil
	m.clearedFields[filingrule.FieldApplicableDocumentTypes] = struct{}{}
}

// ApplicableDocumentTypesCleared returns if the "applicable_document_types" field was cleared in this mutation.
func (m *FilingRuleMutation) ApplicableDocumentTypesCleared() bool {
	_, ok := m.clearedFields[filingrule.FieldApplicableDocumentTypes]
	return ok
}

// ResetApplicableDocumentTypes resets all changes to the "applicable_document_types" field.
func (m *FilingRuleMutation) ResetApplicableDocumentTypes() {
	m.applicable_document_types = nil
	m.appendapplicable_document_types = nil
	delete(m.clearedFields, filingrule.FieldApplicableDocumentTypes)
}

// SetConditions sets the "conditions" field.
func (m *FilingRuleMutation) SetConditions(jm json.RawMessage) {
	m.conditions = &jm
	m.appendconditions = nil
}

// Conditions returns the value of the "conditions" field in the mutation.
func (m *FilingRuleMutation) Conditions() (r json.RawMessage, exists bool) {
	v := m.conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldConditions returns the old "conditions" field's value of the FilingRule entity.
// If the FilingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingRuleMutation) OldConditions(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditions: %w", err)
	}
	return oldValue.Conditions, nil
}

// AppendConditions adds jm to the "conditions" field.
func (m *FilingRuleMutation) AppendConditions(jm json.RawMessage) {
	m.appendconditions = append(m.appendconditions, jm...)
}

// AppendedConditions returns the list of values that were appended to the "conditions" field in this mutation.
func (m *FilingRuleMutation) AppendedConditions() (json.RawMessage, bool) {
	if len(m.appendconditions) == 0 {
		return nil, false
	}
	return m.appendconditions, true
}

// ResetConditions resets all changes to the "conditions" field.
func (m *FilingRuleMutation) ResetConditions() {
	m.conditions = nil
	m.appendconditions = nil
}

// SetActions sets the "actions" field.
func (m *FilingRuleMutation) SetActions(jm json.RawMessage) {
	m.actions = &jm
	m.appendactions = nil
}

// Actions returns the value of the "actions" field in the mutation.
func (m *FilingRuleMutation) Actions() (r json.RawMessage, exists bool) {
	v := m.actions
	if v == nil {
		return
	}
	return *v, true
}

// OldActions returns the old "actions" field's value of the FilingRule entity.
// If the FilingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingRuleMutation) OldActions(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActions: %w", err)
	}
	return oldValue.Actions, nil
}

// AppendActions adds jm to the "actions" field.
func (m *FilingRuleMutation) AppendActions(jm json.RawMessage) {
	m.appendactions = append(m.appendactions, jm...)
}

// AppendedActions returns the list of values that were appended to the "actions" field in this mutation.
func (m *FilingRuleMutation) AppendedActions() (json.RawMessage, bool) {
	if len(m.appendactions) == 0 {
		return nil, false
	}
	return m.appendactions, true
}

// ResetActions resets all changes to the "actions" field.
func (m *FilingRuleMutation) ResetActions() {
	m.actions = nil
	m.appendactions = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FilingRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FilingRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FilingRule entity.
// If the FilingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FilingRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FilingRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FilingRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FilingRule entity.
// If the FilingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FilingRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FilingRuleMutation builder.
func (m *FilingRuleMutation) Where(ps ...predicate.FilingRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FilingRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FilingRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FilingRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FilingRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FilingRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FilingRule).
func (m *FilingRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FilingRuleMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, filingrule.FieldName)
	}
	if m.priority != nil {
		fields = append(fields, filingrule.FieldPriority)
	}
	if m.is_active != nil {
		fields = append(fields, filingrule.FieldIsActive)
	}
	if m.applicable_document_types != nil {
		fields = append(fields, filingrule.FieldApplicableDocumentTypes)
	}
	if m.conditions != nil {
		fields = append(fields, filingrule.FieldConditions)
	}
	if m.actions != nil {
		fields = append(fields, filingrule.FieldActions)
	}
	if m.created_at != nil {
		fields = append(fields, filingrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, filingrule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FilingRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case filingrule.FieldName:
		return m.Name()
	case filingrule.FieldPriority:
		return m.Priority()
	case filingrule.FieldIsActive:
		return m.IsActive()
	case filingrule.FieldApplicableDocumentTypes:
		return m.ApplicableDocumentTypes()
	case filingrule.FieldConditions:
		return m.Conditions()
	case filingrule.FieldActions:
		return m.Actions()
	case filingrule.FieldCreatedAt:
		return m.CreatedAt()
	case filingrule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FilingRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case filingrule.FieldName:
		return m.OldName(ctx)
	case filingrule.FieldPriority:
		return m.OldPriority(ctx)
	case filingrule.FieldIsActive:
		return m.OldIsActive(ctx)
	case filingrule.FieldApplicableDocumentTypes:
		return m.OldApplicableDocumentTypes(ctx)
	case filingrule.FieldConditions:
		return m.OldConditions(ctx)
	case filingrule.FieldActions:
		return m.OldActions(ctx)
	case filingrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case filingrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FilingRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FilingRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case filingrule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case filingrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case filingrule.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case filingrule.FieldApplicableDocumentTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicableDocumentTypes(v)
		return nil
	case filingrule.FieldConditions:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditions(v)
		return nil
	case filingrule.FieldActions:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActions(v)
		return nil
	case filingrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case filingrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FilingRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FilingRuleMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, filingrule.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FilingRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case filingrule.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FilingRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case filingrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown FilingRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FilingRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(filingrule.FieldApplicableDocumentTypes) {
		fields = append(fields, filingrule.FieldApplicableDocumentTypes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FilingRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FilingRuleMutation) ClearField(name string) error {
	switch name {
	case filingrule.FieldApplicableDocumentTypes:
		m.ClearApplicableDocumentTypes()
		return nil
	}
	return fmt.Errorf("unknown FilingRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FilingRuleMutation) ResetField(name string) error {
	switch name {
	case filingrule.FieldName:
		m.ResetName()
		return nil
	case filingrule.FieldPriority:
		m.ResetPriority()
		return nil
	case filingrule.FieldIsActive:
		m.ResetIsActive()
		return nil
	case filingrule.FieldApplicableDocumentTypes:
		m.ResetApplicableDocumentTypes()
		return nil
	case filingrule.FieldConditions:
		m.ResetConditions()
		return nil
	case filingrule.FieldActions:
		m.ResetActions()
		return nil
	case filingrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case filingrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FilingRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FilingRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FilingRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FilingRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FilingRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FilingRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FilingRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FilingRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FilingRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FilingRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FilingRule edge %s", name)
}

// ProcessJobMutation represents an operation that mutates the ProcessJob nodes in the graph.
type ProcessJobMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	tenant_id       *uuid.UUID
	status          *string
	stage           *string
	confidence      *float32
	addconfidence   *float32
	template_id     *uuid.UUID
	error_message   *string
	started_at      *time.Time
	finished_at     *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*ProcessJob, error)
	predicates      []predicate.ProcessJob
}

var _ ent.Mutation = (*ProcessJobMutation)(nil)

// processjobOption allows management of the mutation configuration using functional options.
type processjobOption func(*ProcessJobMutation)

// newProcessJobMutation creates new mutation for the ProcessJob entity.
func newProcessJobMutation(c config, op Op, opts ...processjobOption) *ProcessJobMutation {
	m := &ProcessJobMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessJobID sets the ID field of the mutation.
func withProcessJobID(id uuid.UUID) processjobOption {
	return func(m *ProcessJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessJob
		)
		m.oldValue = func(ctx context.Context) (*ProcessJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessJob sets the old ProcessJob of the mutation.
func withProcessJob(node *ProcessJob) processjobOption {
	return func(m *ProcessJobMutation) {
		m.oldValue = func(context.Context) (*ProcessJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessJob entities.
func (m *ProcessJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ProcessJobMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ProcessJobMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ProcessJobMutation) ResetDocumentID() {
	m.document = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *ProcessJobMutation) SetTenantID(u uuid.UUID) {
	m.tenant_id = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ProcessJobMutation) TenantID() (r uuid.UUID, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldTenantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ProcessJobMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStatus sets the "status" field.
func (m *ProcessJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessJobMutation) ResetStatus() {
	m.status = nil
}

// SetStage sets the "stage" field.
func (m *ProcessJobMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ProcessJobMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ClearStage clears the value of the "stage" field.
func (m *ProcessJobMutation) ClearStage() {
	m.stage = nil
	m.clearedFields[processjob.FieldStage] = struct{}{}
}

// StageCleared returns if the "stage" field was cleared in this mutation.
func (m *ProcessJobMutation) StageCleared() bool {
	_, ok := m.clearedFields[processjob.FieldStage]
	return ok
}

// ResetStage resets all changes to the "stage" field.
func (m *ProcessJobMutation) ResetStage() {
	m.stage = nil
	delete(m.clearedFields, processjob.FieldStage)
}

// SetConfidence sets the "confidence" field.
func (m *ProcessJobMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ProcessJobMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ProcessJobMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ProcessJobMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *ProcessJobMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[processjob.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *ProcessJobMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[processjob.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ProcessJobMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, processjob.FieldConfidence)
}

// SetTemplateID sets the "template_id" field.
func (m *ProcessJobMutation) SetTemplateID(u uuid.UUID) {
	m.template_id = &u
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *ProcessJobMutation) TemplateID() (r uuid.UUID, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldTemplateID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ClearTemplateID clears the value of the "template_id" field.
func (m *ProcessJobMutation) ClearTemplateID() {
	m.template_id = nil
	m.clearedFields[processjob.FieldTemplateID] = struct{}{}
}

// TemplateIDCleared returns if the "template_id" field was cleared in this mutation.
func (m *ProcessJobMutation) TemplateIDCleared() bool {
	_, ok := m.clearedFields[processjob.FieldTemplateID]
	return ok
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *ProcessJobMutation) ResetTemplateID() {
	m.template_id = nil
	delete(m.clearedFields, processjob.FieldTemplateID)
}

// SetErrorMessage sets the "error_message" field.
func (m *ProcessJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ProcessJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ProcessJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[processjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ProcessJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[processjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ProcessJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, processjob.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *ProcessJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ProcessJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ProcessJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[processjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ProcessJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[processjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ProcessJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, processjob.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *ProcessJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ProcessJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ProcessJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[processjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ProcessJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[processjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ProcessJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, processjob.FieldFinishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProcessJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProcessJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProcessJob entity.
// If the ProcessJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProcessJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ProcessJobMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[processjob.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ProcessJobMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ProcessJobMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ProcessJobMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ProcessJobMutation builder.
func (m *ProcessJobMutation) Where(ps ...predicate.ProcessJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessJob).
func (m *ProcessJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.document != nil {
		fields = append(fields, processjob.FieldDocumentID)
	}
	if m.tenant_id != nil {
		fields = append(fields, processjob.FieldTenantID)
	}
	if m.status != nil {
		fields = append(fields, processjob.FieldStatus)
	}
	if m.stage != nil {
		fields = append(fields, processjob.FieldStage)
	}
	if m.confidence != nil {
		fields = append(fields, processjob.FieldConfidence)
	}
	if m.template_id != nil {
		fields = append(fields, processjob.FieldTemplateID)
	}
	if m.error_message != nil {
		fields = append(fields, processjob.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, processjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, processjob.FieldFinishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, processjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, processjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processjob.FieldDocumentID:
		return m.DocumentID()
	case processjob.FieldTenantID:
		return m.TenantID()
	case processjob.FieldStatus:
		return m.Status()
	case processjob.FieldStage:
		return m.Stage()
	case processjob.FieldConfidence:
		return m.Confidence()
	case processjob.FieldTemplateID:
		return m.TemplateID()
	case processjob.FieldErrorMessage:
		return m.ErrorMessage()
	case processjob.FieldStartedAt:
		return m.StartedAt()
	case processjob.FieldFinishedAt:
		return m.FinishedAt()
	case processjob.FieldCreatedAt:
		return m.CreatedAt()
	case processjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processjob.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case processjob.FieldTenantID:
		return m.OldTenantID(ctx)
	case processjob.FieldStatus:
		return m.OldStatus(ctx)
	case processjob.FieldStage:
		return m.OldStage(ctx)
	case processjob.FieldConfidence:
		return m.OldConfidence(ctx)
	case processjob.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case processjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case processjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case processjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case processjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case processjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processjob.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case processjob.FieldTenantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case processjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processjob.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case processjob.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case processjob.FieldTemplateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case processjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case processjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case processjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case processjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case processjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessJobMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, processjob.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processjob.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processjob.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processjob.FieldStage) {
		fields = append(fields, processjob.FieldStage)
	}
	if m.FieldCleared(processjob.FieldConfidence) {
		fields = append(fields, processjob.FieldConfidence)
	}
	if m.FieldCleared(processjob.FieldTemplateID) {
		fields = append(fields, processjob.FieldTemplateID)
	}
	if m.FieldCleared(processjob.FieldErrorMessage) {
		fields = append(fields, processjob.FieldErrorMessage)
	}
	if m.FieldCleared(processjob.FieldStartedAt) {
		fields = append(fields, processjob.FieldStartedAt)
	}
	if m.FieldCleared(processjob.FieldFinishedAt) {
		fields = append(fields, processjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessJobMutation) ClearField(name string) error {
	switch name {
	case processjob.FieldStage:
		m.ClearStage()
		return nil
	case processjob.FieldConfidence:
		m.ClearConfidence()
		return nil
	case processjob.FieldTemplateID:
		m.ClearTemplateID()
		return nil
	case processjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case processjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case processjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessJobMutation) ResetField(name string) error {
	switch name {
	case processjob.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case processjob.FieldTenantID:
		m.ResetTenantID()
		return nil
	case processjob.FieldStatus:
		m.ResetStatus()
		return nil
	case processjob.FieldStage:
		m.ResetStage()
		return nil
	case processjob.FieldConfidence:
		m.ResetConfidence()
		return nil
	case processjob.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case processjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case processjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case processjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case processjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case processjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, processjob.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processjob.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, processjob.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessJobMutation) EdgeCleared(name string) bool {
	switch name {
	case processjob.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessJobMutation) ClearEdge(name string) error {
	switch name {
	case processjob.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ProcessJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessJobMutation) ResetEdge(name string) error {
	switch name {
	case processjob.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ProcessJob edge %s", name)
}
