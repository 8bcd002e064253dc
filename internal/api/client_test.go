package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-client/internal/models"
	"github.com/BruksfildServices01/agenda-client/internal/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.MemoryStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewMemoryStore()
	return New(server.URL, 5*time.Second, store, zerolog.Nop()), store
}

func TestDecodeEnvelope(t *testing.T) {
	var wrapped []string
	require.NoError(t, decodeEnvelope([]byte(`{"data":["09:00","09:30"],"total":2}`), &wrapped))
	assert.Equal(t, []string{"09:00", "09:30"}, wrapped)

	var bare []string
	require.NoError(t, decodeEnvelope([]byte(`["09:00","09:30"]`), &bare))
	assert.Equal(t, []string{"09:00", "09:30"}, bare)
}

func TestDecodeEnvelope_DataFieldIsNotEnvelope(t *testing.T) {
	// O "data" do agendamento é a data do dia, não um envelope.
	var ap models.Appointment
	raw := `{"id":42,"data":"2026-09-10","inicio":"09:00:00","fim":"09:30:00","status":0}`
	require.NoError(t, decodeEnvelope([]byte(raw), &ap))
	assert.Equal(t, uint(42), ap.ID)
	assert.Equal(t, "2026-09-10", ap.Data)
}

func TestAvailableSlots_BareArray(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/estabelecimento/1/horarios-disponiveis", r.URL.Path)
		w.Write([]byte(`["09:00","13:30","19:00"]`))
	})

	slots, err := client.AvailableSlots(context.Background(), SlotQuery{
		EstablishmentID: 1, ServiceID: 2, Date: "2026-09-10",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "13:30", "19:00"}, slots)
}

func TestListCategories_Enveloped(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":1,"nome":"Barbearia"}],"total":1}`))
	})

	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Barbearia", categories[0].Nome)
}

func TestSlotPayload_OmitsStaffWhenAny(t *testing.T) {
	var body map[string]json.RawMessage
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &body))
		w.Write([]byte(`[]`))
	})

	_, err := client.AvailableSlots(context.Background(), SlotQuery{
		EstablishmentID: 1, ServiceID: 2, Date: "2026-09-10",
	})
	require.NoError(t, err)

	// "qualquer profissional": o campo não vai — nem como null, nem como 0.
	_, present := body["colaborador_id"]
	assert.False(t, present)
	assert.JSONEq(t, `"2026-09-10"`, string(body["data"]))
	assert.JSONEq(t, `2`, string(body["servico_id"]))
}

func TestSlotPayload_CarriesChosenStaff(t *testing.T) {
	var body map[string]json.RawMessage
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &body))
		w.Write([]byte(`[]`))
	})

	_, err := client.AvailableSlots(context.Background(), SlotQuery{
		EstablishmentID: 1, ServiceID: 2, Date: "2026-09-10", StaffID: 7,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `7`, string(body["colaborador_id"]))
}

func TestAuthorizationHeaderSentVerbatim(t *testing.T) {
	var authorization string
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":[],"total":0}`))
	})

	require.NoError(t, store.SetToken("Bearer tok123"))

	_, err := client.ListAppointments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", authorization)
}

func TestAuthedCallWithoutSession(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("não deveria chamar a rede sem token")
	})

	_, err := client.ListAppointments(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLogin_StoresBearerToken(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"abc123"}`))
	})

	require.NoError(t, client.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "x"}))

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", token)
}

func TestLogin_AccessTokenFallback(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"xyz"}`))
	})

	require.NoError(t, client.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "x"}))

	token, _ := store.Token()
	assert.Equal(t, "Bearer xyz", token)
}

func TestLogin_MissingToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	err := client.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "x"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "token_nao_recebido", apiErr.Code)
}

func conflictFromLock(t *testing.T, payload string) *ConflictError {
	t.Helper()
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(payload))
	})
	require.NoError(t, store.SetToken("Bearer tok"))

	_, err := client.LockSlot(context.Background(), SlotQuery{EstablishmentID: 1, ServiceID: 2, Date: "2026-09-10"}, "09:00")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	return conflict
}

func TestLockSlot_ConflictWithHorarios(t *testing.T) {
	conflict := conflictFromLock(t, `{"message":"Horário indisponível","horarios":["09:30","10:00"]}`)

	assert.Equal(t, "Horário indisponível", conflict.Message)
	assert.True(t, conflict.HasSlots())
	assert.Equal(t, []string{"09:30", "10:00"}, conflict.Slots)
}

func TestLockSlot_ConflictWithDataKey(t *testing.T) {
	conflict := conflictFromLock(t, `{"message":"Horário indisponível","data":["10:30"]}`)

	assert.True(t, conflict.HasSlots())
	assert.Equal(t, []string{"10:30"}, conflict.Slots)
}

func TestLockSlot_ConflictEmptyListStillCounts(t *testing.T) {
	conflict := conflictFromLock(t, `{"message":"Dia lotado","horarios":[]}`)

	assert.True(t, conflict.HasSlots())
	assert.Empty(t, conflict.Slots)
}

func TestLockSlot_ConflictWithoutSlots(t *testing.T) {
	conflict := conflictFromLock(t, `{"message":"Horário indisponível"}`)

	assert.False(t, conflict.HasSlots())
}

func TestParseError_PlainAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_code":"invalid_request","message":"Dados inválidos."}`))
	})

	_, err := client.ListCategories(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "invalid_request", apiErr.Code)
	assert.Equal(t, "Dados inválidos.", apiErr.Message)
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{Status: http.StatusUnauthorized}))
	assert.True(t, IsUnauthorized(ErrNoSession))
	assert.False(t, IsUnauthorized(&APIError{Status: http.StatusBadRequest}))
	assert.False(t, IsUnauthorized(errors.New("outro erro")))
}
