package devo_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/andyle182810/devohub/devo"
	"github.com/andyle182810/devohub/httpclient"
	"github.com/andyle182810/devohub/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactResponse = `{
	"id": "c-1",
	"phone_number": "+1234567890",
	"email": "jane@example.com",
	"first_name": "Jane",
	"last_name": "Doe",
	"opt_in_sms": true,
	"opt_in_email": false,
	"opt_in_whatsapp": false,
	"opt_in_rcs": false,
	"tags": ["vip"]
}`

func TestContacts_CreateNormalizesChannels(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusCreated, contactResponse)
	client := stub.client(t)

	contact, err := client.Contacts.Create(t.Context(), devo.ContactParams{
		PhoneNumber: "+1 (234) 567-890",
		Email:       "Jane@EXAMPLE.com",
		FirstName:   "Jane",
		LastName:    "Doe",
		Company:     "",
		Metadata:    map[string]any{"source": "import"},
	})
	require.NoError(t, err)
	assert.Equal(t, "c-1", contact.ID)
	assert.True(t, contact.OptInSMS)
	assert.Equal(t, []string{"vip"}, contact.Tags)

	req := stub.lastRequest(t)
	require.Equal(t, http.MethodPost, req.Method)
	require.Equal(t, "/api/v1/contacts", req.Path)

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "+1234567890", body["phone_number"])
	assert.Equal(t, "Jane@example.com", body["email"])
	assert.Equal(t, "Jane", body["first_name"])
	assert.NotContains(t, body, "company")
}

func TestContacts_CreateWithEmailOnly(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusCreated, contactResponse)
	client := stub.client(t)

	_, err := client.Contacts.Create(t.Context(), devo.ContactParams{Email: "jane@example.com"})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(stub.lastRequest(t).Body, &body))
	assert.NotContains(t, body, "phone_number")
}

func TestContacts_CreateRequiresPhoneOrEmail(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusCreated, contactResponse)
	client := stub.client(t)

	_, err := client.Contacts.Create(t.Context(), devo.ContactParams{FirstName: "Jane"})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	require.Len(t, validationErrs, 1)
	assert.Equal(t, "required_without", validationErrs[0].Tag)
	assert.Equal(t, "phone_number or email is required", validationErrs[0].Message)
	assert.Empty(t, stub.calls())
}

func TestContacts_CreateRejectsMalformedChannels(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusCreated, contactResponse)
	client := stub.client(t)

	_, phoneErr := client.Contacts.Create(t.Context(), devo.ContactParams{PhoneNumber: "12345"})
	_, emailErr := client.Contacts.Create(t.Context(), devo.ContactParams{Email: "not-an-email"})

	require.ErrorIs(t, phoneErr, validator.ErrValidation)
	require.ErrorContains(t, phoneErr, "phone_number")
	require.ErrorIs(t, emailErr, validator.ErrValidation)
	require.ErrorContains(t, emailErr, "email")
	require.Empty(t, stub.calls())
}

func TestContacts_Get(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusOK, contactResponse)
	client := stub.client(t)

	contact, err := client.Contacts.Get(t.Context(), " c-1 ")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/contacts/c-1", stub.lastRequest(t).Path)
	assert.Equal(t, "Doe", contact.LastName)
}

func TestContacts_GetNotFound(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusNotFound, `{"message":"Contact not found","code":"NOT_FOUND"}`)
	client := stub.client(t)

	_, err := client.Contacts.Get(t.Context(), "missing")

	apiErr, ok := httpclient.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	require.ErrorIs(t, err, httpclient.ErrServiceError)
}

func TestContacts_UpdateUsesPut(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusOK, contactResponse)
	client := stub.client(t)

	_, err := client.Contacts.Update(t.Context(), "c-1", devo.ContactParams{Company: "Acme"})
	require.NoError(t, err)

	req := stub.lastRequest(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/v1/contacts/c-1", req.Path)
	assert.JSONEq(t, `{"company":"Acme"}`, string(req.Body))
}

func TestContacts_Delete(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusNoContent, "")
	client := stub.client(t)

	deleted, err := client.Contacts.Delete(t.Context(), "c-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	req := stub.lastRequest(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/v1/contacts/c-1", req.Path)
}

func TestContacts_DeleteFailure(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusNotFound, `{"message":"Contact not found"}`)
	client := stub.client(t)

	deleted, err := client.Contacts.Delete(t.Context(), "c-1")

	require.ErrorIs(t, err, httpclient.ErrServiceError)
	assert.False(t, deleted)
}

func TestContacts_ListQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params devo.ListContactsParams
		want   map[string]string
		absent []string
	}{
		{
			name:   "defaults",
			params: devo.ListContactsParams{},
			want:   map[string]string{"limit": "50", "offset": "0"},
			absent: []string{"phone_number", "email", "company"},
		},
		{
			name: "filters are normalized",
			params: devo.ListContactsParams{
				Limit:       10,
				Offset:      30,
				PhoneNumber: "+1 234 567 890",
				Email:       "Jane@Example.com",
				Company:     "Acme",
			},
			want: map[string]string{
				"limit":        "10",
				"offset":       "30",
				"phone_number": "+1234567890",
				"email":        "Jane@example.com",
				"company":      "Acme",
			},
			absent: nil,
		},
		{
			name:   "negative offset is clamped",
			params: devo.ListContactsParams{Offset: -5},
			want:   map[string]string{"limit": "50", "offset": "0"},
			absent: nil,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			stub := newAPIStub(t, http.StatusOK, `{"contacts":[`+contactResponse+`],"total":1}`)
			client := stub.client(t)

			result, err := client.Contacts.List(t.Context(), testCase.params)
			require.NoError(t, err)
			require.Len(t, result.Contacts, 1)
			assert.Equal(t, 1, result.Total)

			query := stub.lastRequest(t).Query
			for key, value := range testCase.want {
				assert.Equal(t, value, query.Get(key), key)
			}

			for _, key := range testCase.absent {
				assert.False(t, query.Has(key), key)
			}
		})
	}
}

func TestContacts_ListRejectsBadFilter(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusOK, `{"contacts":[]}`)
	client := stub.client(t)

	_, err := client.Contacts.List(t.Context(), devo.ListContactsParams{PhoneNumber: "abc"})

	require.ErrorIs(t, err, validator.ErrValidation)
	require.Empty(t, stub.calls())
}
