package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/utez-accounts/internal/logger"
	"github.com/sbilibin2017/utez-accounts/internal/models"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction is committed when the handler answers below 400 and rolled back otherwise.
// The response is held back until the commit succeeds; a failed commit answers 500 instead.
// Callbacks registered with AfterCommit run only after a successful commit.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeTxError(w)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &commitHooks{}
			ctx := context.WithValue(setTxToContext(r.Context(), tx), hooksKey, hooks)

			bw := &bufferedResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeTxError(w)
				return
			}

			for _, fn := range hooks.fns {
				fn(r.Context())
			}
			bw.flush()
		})
	}
}

// AfterCommit defers fn until the request transaction commits.
// Without a transaction in ctx, fn runs immediately.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	hooks, ok := ctx.Value(hooksKey).(*commitHooks)
	if !ok {
		fn(ctx)
		return
	}
	hooks.fns = append(hooks.fns, fn)
}

type commitHooks struct {
	fns []func(ctx context.Context)
}

// bufferedResponseWriter records status and body so nothing reaches the client before the commit.
type bufferedResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	body        bytes.Buffer
}

func (bw *bufferedResponseWriter) WriteHeader(code int) {
	if bw.wroteHeader {
		return
	}
	bw.statusCode = code
	bw.wroteHeader = true
}

func (bw *bufferedResponseWriter) Write(b []byte) (int, error) {
	bw.wroteHeader = true
	return bw.body.Write(b)
}

func (bw *bufferedResponseWriter) flush() {
	bw.ResponseWriter.WriteHeader(bw.statusCode)
	bw.ResponseWriter.Write(bw.body.Bytes())
}

func writeTxError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

type hooksContextKey struct{}

var (
	txKey    = contextKey{}
	hooksKey = hooksContextKey{}
)

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
