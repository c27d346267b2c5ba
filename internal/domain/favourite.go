package domain

import (
	"fmt"
	"time"
)

// FavouriteID includes the like timestamp, so the same user may favourite the
// same product at different moments and each is a distinct record.
type FavouriteID struct {
	UserID    int64
	ProductID int64
	LikeDate  time.Time
}

func (id FavouriteID) String() string {
	return fmt.Sprintf("userId=%d, productId=%d, likeDate=%s",
		id.UserID, id.ProductID, id.LikeDate.Format(time.RFC3339Nano))
}

// Favourite stores only the foreign ids; the user and product substructures
// live in their owning services and are reconstructed on read.
type Favourite struct {
	UserID    int64
	ProductID int64
	LikeDate  time.Time
}

func (f Favourite) ID() FavouriteID {
	return FavouriteID{UserID: f.UserID, ProductID: f.ProductID, LikeDate: f.LikeDate}
}
