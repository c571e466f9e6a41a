package appointmentRepo

import (
	"context"
	"fmt"

	"purrfect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// reserveSlotCapacity performs the atomic compare-and-swap on the slot row.
// The filter only matches while capacity remains; the pipeline increments
// current_bookings and recomputes is_available from the incremented value in
// the same server-side update, so the invariant
// is_available == (current_bookings < max_bookings) can never be observed
// violated. MatchedCount == 0 means the slot filled (or never matched the
// vet/date) between the caller's read and this write.
func (r *mongoAppointmentRepo) reserveSlotCapacity(ctx context.Context, slotID, vetID, date string) error {
	filter := bson.M{
		"id":           slotID,
		"vet_id":       vetID,
		"date":         date,
		"is_available": true,
		"$expr":        bson.M{"$lt": bson.A{"$current_bookings", "$max_bookings"}},
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"current_bookings": bson.M{"$add": bson.A{"$current_bookings", 1}},
		}}},
		bson.D{{Key: "$set", Value: bson.M{
			"is_available": bson.M{"$lt": bson.A{"$current_bookings", "$max_bookings"}},
		}}},
	}

	res, err := r.slots.UpdateOne(ctx, filter, pipeline)
	if err != nil {
		return fmt.Errorf("failed to reserve slot capacity: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrSlotUnavailable
	}
	return nil
}

// Book wraps the appointment insert and the slot capacity reservation in one
// mongo session transaction. A CAS failure aborts the whole transaction, so an
// appointment can never exist against a slot that was not actually reserved.
func (r *mongoAppointmentRepo) Book(ctx context.Context, appt *models.Appointment, date string) error {
	client := r.appointments.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.appointments.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		if err := r.reserveSlotCapacity(sc, appt.SlotID, appt.VetID, date); err != nil {
			return err
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
