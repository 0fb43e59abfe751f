// Package services contains the application services of the SnapCryptor
// client. This file defines the operation controller: it owns the file
// selection and the password, validates a submission, dispatches it to the
// remote service and turns the answer into a status message, downloads and
// a reset.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Kerimcanak/SnapCryptor/internal/client/client"
	"github.com/Kerimcanak/SnapCryptor/internal/client/fileset"
	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
	"github.com/Kerimcanak/SnapCryptor/internal/common"
	"github.com/Kerimcanak/SnapCryptor/internal/logging"
)

// Fixed validation texts. They carry no "Error: " prefix.
const (
	MsgSelectFiles   = "Please select files first."
	MsgEnterPassword = "Please enter a password."

	errorPrefix = "Error: "
)

// Downloader delivers one processed file.
type Downloader interface {
	TriggerDownload(ctx context.Context, url, suggestedName string) error
}

// HistoryStore receives one record per dispatched submission.
type HistoryStore interface {
	Insert(ctx context.Context, rec *models.OperationRecord) error
}

// OperationController coordinates the lifecycle of batch submissions.
//
// At most one submission is in flight. While it is, Submit, AddFiles,
// RemoveFile and SetPassword return common.ErrSubmissionInFlight and change
// nothing. The mutex is never held across the network call, so the accessors
// stay responsive during a submission.
type OperationController struct {
	client     client.Client
	downloader Downloader
	history    HistoryStore
	log        logging.Logger
	onStatus   func(models.StatusMessage)
	now        func() time.Time
	newID      func() string

	mu       sync.Mutex
	files    fileset.FileSet
	password []byte
	state    models.OperationState
	status   models.StatusMessage
}

type ControllerOption func(*OperationController)

// WithHistory records every dispatched submission in h.
func WithHistory(h HistoryStore) ControllerOption {
	return func(c *OperationController) { c.history = h }
}

func WithLogger(l logging.Logger) ControllerOption {
	return func(c *OperationController) { c.log = l }
}

// WithStatusListener registers fn to be called with every new status
// message, after the controller's lock has been released.
func WithStatusListener(fn func(models.StatusMessage)) ControllerOption {
	return func(c *OperationController) { c.onStatus = fn }
}

// NewOperationController builds an idle controller with an empty selection.
// A nil downloader disables downloads; the result files are still reported.
func NewOperationController(cl client.Client, d Downloader, opts ...ControllerOption) *OperationController {
	c := &OperationController{
		client:     cl,
		downloader: d,
		log:        logging.Nop(),
		now:        time.Now,
		newID:      uuid.NewString,
		files:      fileset.New(),
		state:      models.Idle,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// AddFiles appends files to the selection, skipping names already present.
func (c *OperationController) AddFiles(files ...models.FileHandle) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Submitting {
		return common.ErrSubmissionInFlight
	}
	c.files = c.files.Add(files...)
	return nil
}

// RemoveFile drops the file called name. Unknown names are ignored.
func (c *OperationController) RemoveFile(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Submitting {
		return common.ErrSubmissionInFlight
	}
	c.files = c.files.Remove(name)
	return nil
}

// SetPassword replaces the password. The controller keeps its own copy and
// wipes it on reset; the caller may wipe pw afterwards.
func (c *OperationController) SetPassword(pw []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Submitting {
		return common.ErrSubmissionInFlight
	}
	common.WipeByteArray(c.password)
	c.password = append([]byte(nil), pw...)
	return nil
}

func (c *OperationController) Files() []models.FileHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.files.Files()
}

func (c *OperationController) HasPassword() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.password) > 0
}

func (c *OperationController) Status() models.StatusMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *OperationController) State() models.OperationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsSubmitDisabled tells the presentation whether a Submit would be refused
// or fail validation.
func (c *OperationController) IsSubmitDisabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.files.IsEmpty() || len(c.password) == 0 || c.state.Submitting
}

// Submit runs one encrypt or decrypt batch to completion.
//
// The returned status is also stored as Status(). The error is nil only on
// success: validation failures return common.ErrNoFilesSelected or
// common.ErrNoPassword, a submission already in flight returns
// common.ErrSubmissionInFlight with the status untouched, and dispatch
// failures return the client error.
//
// The caller's cancellation is not propagated: once dispatched,
// a submission always resolves.
func (c *OperationController) Submit(ctx context.Context, kind models.OperationKind) (models.StatusMessage, error) {
	if !kind.Valid() {
		return c.Status(), fmt.Errorf("submit: %w %q", common.ErrUnknownOperation, kind)
	}

	c.mu.Lock()
	if c.state.Submitting {
		st := c.status
		c.mu.Unlock()
		return st, common.ErrSubmissionInFlight
	}
	if c.files.IsEmpty() {
		c.status = models.ErrorStatus(MsgSelectFiles)
		st := c.status
		c.mu.Unlock()
		c.notify(st)
		return st, common.ErrNoFilesSelected
	}
	if len(c.password) == 0 {
		c.status = models.ErrorStatus(MsgEnterPassword)
		st := c.status
		c.mu.Unlock()
		c.notify(st)
		return st, common.ErrNoPassword
	}

	c.state = models.Submitting(kind)
	c.status = models.ProgressStatus(kind.Verb() + " files...")
	progress := c.status
	files := c.files.Files()
	password := string(c.password)
	c.mu.Unlock()
	c.notify(progress)

	ctx = context.WithoutCancel(ctx)
	id := c.newID()
	rec := &models.OperationRecord{ID: id, Kind: kind, StartedAt: c.now(), Files: recordFiles(files)}
	log := c.log.With("request_id", id, "kind", string(kind))

	log.Info(ctx, "submission dispatched", "files", len(files))

	res, err := c.client.Process(client.WithRequestID(ctx, id), kind, password, files)
	if err == nil && res == nil {
		err = client.ErrMalformedResponse
	}
	if err != nil {
		st := models.ErrorStatus(errorPrefix + failureMessage(err))
		log.Error(ctx, "submission failed", "error", err)

		c.mu.Lock()
		c.state = models.Idle
		c.status = st
		c.mu.Unlock()
		c.notify(st)

		rec.Outcome = models.OutcomeFailure
		c.record(ctx, log, rec, st)
		return st, err
	}

	msg := res.Message
	if msg == "" {
		msg = kind.Noun() + " successful!"
	}
	st := models.InfoStatus(msg)

	// the result is shown before downloads start; the state stays
	// Submitting until the selection is reset
	c.mu.Lock()
	c.status = st
	c.mu.Unlock()
	c.notify(st)

	c.triggerDownloads(ctx, log, res.Files)

	c.mu.Lock()
	c.files = fileset.New()
	common.WipeByteArray(c.password)
	c.password = nil
	c.state = models.Idle
	c.mu.Unlock()

	log.Info(ctx, "submission succeeded", "results", len(res.Files))

	rec.Outcome = models.OutcomeSuccess
	matchProcessedNames(rec.Files, res.Files)
	c.record(ctx, log, rec, st)
	return st, nil
}

// triggerDownloads starts one download per result file that has a link, in
// result order. A failed download is logged and does not stop the others.
func (c *OperationController) triggerDownloads(ctx context.Context, log logging.Logger, files []models.ProcessedFile) {
	for _, f := range files {
		if f.DownloadURL == "" {
			continue
		}
		url := c.client.ResolveURL(f.DownloadURL)
		name := f.SuggestedName()

		if c.downloader == nil {
			log.Info(ctx, "download available", "url", url, "name", name)
			continue
		}
		if err := c.downloader.TriggerDownload(ctx, url, name); err != nil {
			log.Warn(ctx, "download failed", "url", url, "name", name, "error", err)
		}
	}
}

func (c *OperationController) notify(st models.StatusMessage) {
	if c.onStatus != nil {
		c.onStatus(st)
	}
}

func (c *OperationController) record(ctx context.Context, log logging.Logger, rec *models.OperationRecord, st models.StatusMessage) {
	if c.history == nil {
		return
	}
	rec.Message = st.Text
	rec.FinishedAt = c.now()
	if err := c.history.Insert(ctx, rec); err != nil {
		log.Warn(ctx, "history not recorded", "error", err)
	}
}

// failureMessage is the text shown after "Error: ".
func failureMessage(err error) string {
	var se *client.StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

func recordFiles(files []models.FileHandle) []models.RecordFile {
	out := make([]models.RecordFile, 0, len(files))
	for i, f := range files {
		out = append(out, models.RecordFile{Position: i, Name: f.Name, Size: f.Size})
	}
	return out
}

// matchProcessedNames links result files to submitted ones by original_name,
// falling back to position when the service does not echo names.
func matchProcessedNames(rec []models.RecordFile, results []models.ProcessedFile) {
	byName := make(map[string]string, len(results))
	for _, r := range results {
		if r.OriginalName != "" {
			byName[r.OriginalName] = r.SuggestedName()
		}
	}
	for i := range rec {
		if name, ok := byName[rec[i].Name]; ok {
			rec[i].ProcessedName = name
			continue
		}
		if len(byName) == 0 && i < len(results) {
			rec[i].ProcessedName = results[i].SuggestedName()
		}
	}
}
