package main // Seeds the database with sample rooms and test users

import (
    "context"
    "log"
    "time"

    "github.com/joho/godotenv"

    "github.com/easestay/easestay/internal/config"
    "github.com/easestay/easestay/internal/database"
    "github.com/easestay/easestay/internal/model"
    "github.com/easestay/easestay/internal/repository"
)

func main() {
    _ = godotenv.Load()

    cfg := config.Load()
    db, err := database.Open(cfg)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
    defer cancel()

    // Child tables first so foreign keys do not block the wipe.
    for _, table := range []string{"payments", "bookings", "feedback", "rooms", "users"} {
        if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
            log.Fatalf("clear %s: %v", table, err)
        }
    }

    rooms := repository.NewRoomRepo(db)
    for i := range sampleRooms {
        if err := rooms.Create(ctx, &sampleRooms[i]); err != nil {
            log.Fatalf("seed room %q: %v", sampleRooms[i].Name, err)
        }
    }
    log.Printf("inserted %d rooms", len(sampleRooms))

    users := repository.NewUserRepo(db)
    for _, su := range sampleUsers {
        u := su.user
        if _, err := users.Create(ctx, &u, su.password, cfg.BcryptCost); err != nil {
            log.Fatalf("seed user %q: %v", u.Email, err)
        }
    }
    log.Printf("inserted %d users", len(sampleUsers))

    log.Println("seeding completed")
    log.Println("admin: admin@easestay.com / admin123")
    log.Println("staff: staff@easestay.com / staff123")
    log.Println("guest: guest@easestay.com / guest123")
}

var sampleRooms = []model.Room{
    {
        Name: "Luxury King Suite", Type: "suite", RoomNumber: "301", Price: 7999, Capacity: 2,
        Amenities:   []string{"WiFi", "AC", "Mini Bar", "TV", "Ocean View", "Balcony"},
        Description: "Spacious suite with king bed, city view, and premium amenities",
        Image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
    },
    {
        Name: "Deluxe Double Room", Type: "deluxe", RoomNumber: "205", Price: 5499, Capacity: 3,
        Amenities:   []string{"WiFi", "AC", "TV", "Balcony", "Work Desk"},
        Description: "Comfortable room with double beds and modern amenities",
        Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
    },
    {
        Name: "Executive Business Room", Type: "executive", RoomNumber: "412", Price: 6499, Capacity: 2,
        Amenities:   []string{"WiFi", "AC", "TV", "Work Desk", "Coffee Maker", "Printer"},
        Description: "Perfect for business travelers with work desk and premium WiFi",
        Image:       "https://images.unsplash.com/photo-1590490360182-c33d57733427?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
    },
    {
        Name: "Family Suite", Type: "family", RoomNumber: "501", Price: 8999, Capacity: 4,
        Amenities:   []string{"WiFi", "AC", "TV", "Kitchenette", "2 Bathrooms", "Balcony"},
        Description: "Large suite perfect for families with multiple bedrooms",
        Image:       "https://images.unsplash.com/photo-1611892440504-42a792e24d32?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
    },
    {
        Name: "Premium Ocean View", Type: "premium", RoomNumber: "201", Price: 9999, Capacity: 2,
        Amenities:   []string{"WiFi", "AC", "TV", "Ocean View", "Balcony", "Mini Bar", "Jacuzzi"},
        Description: "Luxurious room with stunning ocean views and private balcony",
        Image:       "https://images.unsplash.com/photo-1564501049412-61c2a3083791?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
    },
    {
        Name: "Standard Single Room", Type: "standard", RoomNumber: "101", Price: 2999, Capacity: 1,
        Amenities:   []string{"WiFi", "AC", "TV"},
        Description: "Comfortable single room for solo travelers",
        Image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
    },
    {
        Name: "Presidential Suite", Type: "suite", RoomNumber: "701", Price: 14999, Capacity: 4,
        Amenities:   []string{"WiFi", "AC", "TV", "Private Bar", "Jacuzzi", "Butler Service", "City View"},
        Description: "Ultra-luxury suite with separate living area and dining room",
        Image:       "https://images.unsplash.com/photo-1590490360182-c33d57733427?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
    },
    {
        Name: "Honeymoon Suite", Type: "suite", RoomNumber: "601", Price: 11999, Capacity: 2,
        Amenities:   []string{"WiFi", "AC", "TV", "Jacuzzi", "Romantic Decor", "Room Service", "Ocean View"},
        Description: "Romantic suite with heart-shaped bed and champagne service",
        Image:       "https://images.unsplash.com/photo-1611892440504-42a792e24d32?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
    },
    {
        Name: "Deluxe Twin Room", Type: "deluxe", RoomNumber: "206", Price: 5999, Capacity: 2,
        Amenities:   []string{"WiFi", "AC", "TV", "Balcony", "Mini Fridge"},
        Description: "Spacious room with two twin beds",
        Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
    },
    {
        Name: "Superior Room", Type: "superior", RoomNumber: "102", Price: 4499, Capacity: 2,
        Amenities:   []string{"WiFi", "AC", "TV", "Work Desk"},
        Description: "Well-appointed room with modern amenities",
        Image:       "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
    },
    {
        Name: "Garden View Room", Type: "standard", RoomNumber: "103", Price: 3999, Capacity: 2,
        Amenities:   []string{"WiFi", "AC", "TV", "Garden View", "Balcony"},
        Description: "Peaceful room overlooking the hotel gardens",
        Image:       "https://images.unsplash.com/photo-1611892440504-42a792e24d32?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
    },
    {
        Name: "Penthouse Suite", Type: "suite", RoomNumber: "801", Price: 17999, Capacity: 4,
        Amenities:   []string{"WiFi", "AC", "TV", "Private Terrace", "Jacuzzi", "Butler Service", "360° View"},
        Description: "Exclusive top-floor suite with panoramic city views",
        Image:       "https://images.unsplash.com/photo-1590490360182-c33d57733427?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
    },
}

var sampleUsers = []struct {
    user     model.User
    password string
}{
    {
        user: model.User{
            Email: "admin@easestay.com", FirstName: "Admin", LastName: "User",
            Phone: "+91 9876543210", Role: model.RoleAdmin,
        },
        password: "admin123",
    },
    {
        user: model.User{
            Email: "staff@easestay.com", FirstName: "Staff", LastName: "Member",
            Phone: "+91 9876543211", Role: model.RoleStaff,
        },
        password: "staff123",
    },
    {
        user: model.User{
            Email: "guest@easestay.com", FirstName: "Guest", LastName: "User",
            Phone: "+91 9876543212", Role: model.RoleGuest,
        },
        password: "guest123",
    },
}
