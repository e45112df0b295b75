package ndr_test

import (
	"testing"
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/ndr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIncident(t *testing.T) {
	t.Run("opens with a single attempt", func(t *testing.T) {
		now := time.Now()
		incident, err := ndr.NewIncident(kernel.NewUUID(), "ORD-1", ndr.ReasonCustomerNotAvailable, now)

		require.NoError(t, err)
		assert.Equal(t, "ORD-1", incident.OrderRef())
		assert.Equal(t, ndr.ReasonCustomerNotAvailable, incident.Reason())
		assert.Equal(t, 1, incident.Attempts())
		assert.Equal(t, ndr.StatusOpen, incident.Status())
		assert.True(t, incident.IsOpen())
		assert.Equal(t, now, incident.LastAttemptAt())
		assert.Nil(t, incident.ResolvedAt())
	})

	t.Run("rejects an empty order reference", func(t *testing.T) {
		_, err := ndr.NewIncident(kernel.NewUUID(), "  ", ndr.ReasonCustomerNotAvailable, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects an unknown reason", func(t *testing.T) {
		_, err := ndr.NewIncident(kernel.NewUUID(), "ORD-1", ndr.ReasonUnknown, time.Now())
		require.Error(t, err)
	})
}

func TestIncidentRegisterAttempt(t *testing.T) {
	t.Run("increments attempts and updates the reason", func(t *testing.T) {
		incident, err := ndr.NewIncident(kernel.NewUUID(), "ORD-1", ndr.ReasonCustomerNotAvailable, time.Now())
		require.NoError(t, err)

		later := time.Now().Add(24 * time.Hour)
		require.NoError(t, incident.RegisterAttempt(ndr.ReasonPhoneUnreachable, later))

		assert.Equal(t, 2, incident.Attempts())
		assert.Equal(t, ndr.ReasonPhoneUnreachable, incident.Reason())
		assert.Equal(t, later, incident.LastAttemptAt())
		assert.True(t, incident.IsOpen())
	})

	t.Run("fails on a closed incident", func(t *testing.T) {
		incident, err := ndr.NewIncident(kernel.NewUUID(), "ORD-1", ndr.ReasonCustomerRefused, time.Now())
		require.NoError(t, err)
		_, err = incident.Resolve(ndr.ActionReattempt, time.Now())
		require.NoError(t, err)

		err = incident.RegisterAttempt(ndr.ReasonCustomerRefused, time.Now())
		require.ErrorIs(t, err, ndr.ErrIncidentAlreadyClosed)
		assert.Equal(t, 1, incident.Attempts())
	})
}

func TestIncidentResolve(t *testing.T) {
	newOpenIncident := func(t *testing.T) *ndr.Incident {
		t.Helper()
		incident, err := ndr.NewIncident(kernel.NewUUID(), "ORD-1", ndr.ReasonAddressIncomplete, time.Now())
		require.NoError(t, err)
		return incident
	}

	t.Run("reattempt closes the incident without touching the order", func(t *testing.T) {
		incident := newOpenIncident(t)

		returnToOrigin, err := incident.Resolve(ndr.ActionReattempt, time.Now())

		require.NoError(t, err)
		assert.False(t, returnToOrigin)
		assert.Equal(t, ndr.StatusResolved, incident.Status())
		assert.NotNil(t, incident.ResolvedAt())
	})

	t.Run("update contact closes the incident without touching the order", func(t *testing.T) {
		incident := newOpenIncident(t)

		returnToOrigin, err := incident.Resolve(ndr.ActionUpdateContact, time.Now())

		require.NoError(t, err)
		assert.False(t, returnToOrigin)
		assert.Equal(t, ndr.StatusResolved, incident.Status())
	})

	t.Run("initiate rto requests the order transition", func(t *testing.T) {
		incident := newOpenIncident(t)

		returnToOrigin, err := incident.Resolve(ndr.ActionInitiateRTO, time.Now())

		require.NoError(t, err)
		assert.True(t, returnToOrigin)
		assert.Equal(t, ndr.StatusRTOInitiated, incident.Status())
	})

	t.Run("resolving twice fails with the closed error", func(t *testing.T) {
		incident := newOpenIncident(t)
		_, err := incident.Resolve(ndr.ActionReattempt, time.Now())
		require.NoError(t, err)

		_, err = incident.Resolve(ndr.ActionInitiateRTO, time.Now())

		require.ErrorIs(t, err, ndr.ErrIncidentAlreadyClosed)
		var closedErr *ndr.IncidentAlreadyClosedError
		require.ErrorAs(t, err, &closedErr)
		assert.Equal(t, ndr.StatusResolved, closedErr.Status)
	})

	t.Run("rejects an unknown action", func(t *testing.T) {
		incident := newOpenIncident(t)
		_, err := incident.Resolve(ndr.ActionUnknown, time.Now())
		require.Error(t, err)
		assert.True(t, incident.IsOpen())
	})
}

func TestFailureReasonFromString(t *testing.T) {
	for _, label := range []string{
		"Customer Not Available",
		"Address Incomplete / Incorrect",
		"Phone Unreachable / Switched Off",
		"Customer Refused Delivery",
		"COD Payment Issue",
		"Area Out of Delivery Zone",
		"Shipment Rescheduled by Customer",
	} {
		t.Run(label, func(t *testing.T) {
			reason, err := ndr.FailureReasonFromString(label)
			require.NoError(t, err)
			assert.Equal(t, label, reason.String())
		})
	}

	t.Run("unknown label fails", func(t *testing.T) {
		_, err := ndr.FailureReasonFromString("Dog Ate The Parcel")
		require.Error(t, err)
	})
}

func TestIncidentValidate(t *testing.T) {
	var incident ndr.Incident
	require.ErrorIs(t, incident.Validate(), ndr.ErrIncidentIsNotConstructed)
}
