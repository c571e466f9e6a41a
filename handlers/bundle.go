package handlers

import (
	"purrfect/services/admin"
	"purrfect/services/adoption"
	"purrfect/services/booking"
	"purrfect/services/lostpet"
	"purrfect/services/notification"
	"purrfect/services/payment"
	"purrfect/services/pet"
	"purrfect/services/reminder"
	"purrfect/services/user"
	"purrfect/services/vet"
)

// HandlerBundle groups all endpoint handlers and the services they delegate
// to into one struct.
type HandlerBundle struct {
	UserService         user.UserService
	PetService          pet.PetService
	BookingService      booking.BookingService
	PaymentService      payment.PaymentService
	NotificationService notification.NotificationService
	LostPetService      lostpet.LostPetService
	AdoptionService     adoption.AdoptionService
	ReminderService     reminder.ReminderService
	VetService          vet.VetService
	AdminService        admin.AdminService
}
