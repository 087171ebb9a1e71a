package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateHotel(c *ginext.Context)
	GetHotel(c *ginext.Context)
	ListHotels(c *ginext.Context)
	ListHotelRooms(c *ginext.Context)
	ListHotelReviews(c *ginext.Context)
	CreateRoom(c *ginext.Context)
	GetRoom(c *ginext.Context)
	SearchRooms(c *ginext.Context)
	GetRoomAvailability(c *ginext.Context)
	GetRoomBookings(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CompleteBooking(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	CreateReview(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Hotels
		api.POST("/hotels", h.CreateHotel)
		api.GET("/hotels", h.ListHotels)
		api.GET("/hotels/:id", h.GetHotel)
		api.GET("/hotels/:id/rooms", h.ListHotelRooms)
		api.GET("/hotels/:id/reviews", h.ListHotelReviews)

		// Rooms
		api.POST("/rooms", h.CreateRoom)
		api.GET("/rooms/search", h.SearchRooms)
		api.GET("/rooms/:id", h.GetRoom)
		api.GET("/rooms/:id/availability", h.GetRoomAvailability)
		api.GET("/rooms/:id/bookings", h.GetRoomBookings)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/complete", h.CompleteBooking)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)

		// Reviews
		api.POST("/reviews", h.CreateReview)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
