package initializers

import (
	"context"

	"github.com/google/uuid"
	"github.com/voltkart/voltkart-api/models"
	"github.com/voltkart/voltkart-api/store"
	"github.com/voltkart/voltkart-api/utils"
	"go.uber.org/zap"
)

var catalog = []models.Product{
	{Name: "Wireless Headphones", Price: 1356.00, Image: "images/headphones1.jpg", Category: "Headphones", Description: "High-quality wireless headphones for everyday use."},
	{Name: "Noise Cancelling Headphones", Price: 1687.00, Image: "images/headphones2.jpg", Category: "Headphones", Description: "Block out noise with these advanced headphones."},
	{Name: "Over-Ear Headphones", Price: 1747.00, Image: "images/headphones3.jpg", Category: "Headphones", Description: "Comfortable over-ear design with crisp sound."},
	{Name: "Bass Boost Headphones", Price: 1333.00, Image: "images/headphones4.jpg", Category: "Headphones", Description: "Enhanced bass for an immersive music experience."},
	{Name: "Sport Headphones", Price: 1485.00, Image: "images/headphones5.jpg", Category: "Headphones", Description: "Sweat-resistant headphones perfect for workouts."},
	{Name: "Wireless Gaming Headphones", Price: 1239.00, Image: "images/headphones6.jpg", Category: "Headphones", Description: "High-performance gaming headphones with surround sound."},
	{Name: "Smart Watch Series 5", Price: 1187.00, Image: "images/watches1.jpg", Category: "Watches", Description: "Track your fitness and notifications with ease."},
	{Name: "Fitness Tracker", Price: 1557.00, Image: "images/watches2.jpg", Category: "Watches", Description: "Monitor your daily activity and sleep patterns."},
	{Name: "Luxury Analog Watch", Price: 1844.00, Image: "images/watches3.jpg", Category: "Watches", Description: "Elegant design perfect for formal occasions."},
	{Name: "Digital Sport Watch", Price: 1029.00, Image: "images/watches4.jpg", Category: "Watches", Description: "Rugged watch ideal for outdoor sports."},
	{Name: "Waterproof Watch", Price: 1458.00, Image: "images/watches5.jpg", Category: "Watches", Description: "Stay active without worrying about water damage."},
	{Name: "Health Monitor Watch", Price: 1522.00, Image: "images/watches6.jpg", Category: "Watches", Description: "Advanced health tracking and heart rate monitoring."},
	{Name: "Bluetooth Speaker", Price: 1596.00, Image: "images/speakers1.jpg", Category: "Speakers", Description: "Portable Bluetooth speaker with clear sound."},
	{Name: "Portable Speaker", Price: 1598.00, Image: "images/speakers2.jpg", Category: "Speakers", Description: "Take your music anywhere with ease."},
	{Name: "Home Theater Speaker", Price: 1166.00, Image: "images/speakers3.jpg", Category: "Speakers", Description: "Bring cinema-quality sound to your home."},
	{Name: "Bass Speaker", Price: 1772.00, Image: "images/speakers4.jpg", Category: "Speakers", Description: "Deep bass speaker for immersive audio."},
	{Name: "Outdoor Speaker", Price: 1799.00, Image: "images/speakers5.jpg", Category: "Speakers", Description: "Durable speaker for outdoor use."},
	{Name: "Waterproof Bluetooth Speaker", Price: 1962.00, Image: "images/speakers6.jpg", Category: "Speakers", Description: "Waterproof speaker with powerful sound."},
	{Name: "Gaming Mouse", Price: 1085.00, Image: "images/mouse1.jpg", Category: "Mouse", Description: "High precision mouse for gaming enthusiasts."},
	{Name: "Ergonomic Mouse", Price: 1271.00, Image: "images/mouse2.jpg", Category: "Mouse", Description: "Comfortable mouse for long working hours."},
	{Name: "Wireless Optical Mouse", Price: 1902.00, Image: "images/mouse3.jpg", Category: "Mouse", Description: "No wires, smooth and responsive performance."},
	{Name: "Bluetooth Mouse", Price: 1411.00, Image: "images/mouse4.jpg", Category: "Mouse", Description: "Connects via Bluetooth for convenience."},
	{Name: "RGB Gaming Mouse", Price: 1332.00, Image: "images/mouse5.jpg", Category: "Mouse", Description: "Colorful backlight gaming mouse."},
	{Name: "Compact Travel Mouse", Price: 1023.00, Image: "images/mouse6.jpg", Category: "Mouse", Description: "Small and portable mouse for travel."},
	{Name: "Mechanical Keyboard", Price: 1797.00, Image: "images/keyboards1.jpg", Category: "Keyboards", Description: "Durable mechanical keyboard with tactile keys."},
	{Name: "Wireless Keyboard", Price: 1797.00, Image: "images/keyboards2.jpg", Category: "Keyboards", Description: "Type freely without cables getting in the way."},
	{Name: "Gaming Keyboard", Price: 1503.00, Image: "images/keyboards3.jpg", Category: "Keyboards", Description: "RGB backlit keyboard perfect for gaming."},
	{Name: "Ergonomic Keyboard", Price: 1442.00, Image: "images/keyboards4.jpg", Category: "Keyboards", Description: "Designed to reduce strain on your hands."},
	{Name: "Compact Keyboard", Price: 1712.00, Image: "images/keyboards5.jpg", Category: "Keyboards", Description: "Space-saving keyboard for small desks."},
	{Name: "RGB Backlit Keyboard", Price: 1246.00, Image: "images/keyboards6.jpg", Category: "Keyboards", Description: "Bright RGB lights for a stylish setup."},
}

// SeedProducts loads the static catalog into an empty store. It runs once at
// startup and is a no-op when any products already exist.
func SeedProducts(ctx context.Context, s store.Store) error {
	count, err := s.CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := make([]models.Product, len(catalog))
	copy(products, catalog)
	for i := range products {
		products[i].ID = uuid.NewString()
	}

	if err := s.InsertProducts(ctx, products); err != nil {
		return err
	}

	utils.Logger.Info("product catalog seeded", zap.Int("count", len(products)))
	return nil
}
