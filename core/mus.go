package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for everything the storage layer persists. The schema is
// small and stable, so these are written by hand rather than generated.
var (
	IDMUS          = idMUS{}
	IDSliceMUS     = ord.NewSliceSer[ID](IDMUS)
	StringSliceMUS = ord.NewSliceSer[string](ord.String)
	IngredientMUS  = ingredientMUS{}
	RecipeMUS      = recipeMUS{}
	BoostersMUS    = boostersMUS{}
	UserProfileMUS = userProfileMUS{}
)

type idMUS struct{}

var _ mus.Serializer[ID] = idMUS{}

func (s idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (s idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (s idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (s idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

// Timestamps travel as unix microseconds.
type timeMUS struct{}

var timeSer = timeMUS{}

var _ mus.Serializer[time.Time] = timeMUS{}

func (s timeMUS) Marshal(t time.Time, bs []byte) (n int) {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func (s timeMUS) Unmarshal(bs []byte) (t time.Time, n int, err error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func (s timeMUS) Size(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}

func (s timeMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int64.Skip(bs)
}

type ingredientMUS struct{}

var _ mus.Serializer[Ingredient] = ingredientMUS{}

func (s ingredientMUS) Marshal(v Ingredient, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += raw.Float64.Marshal(v.Amount, bs[n:])
	n += ord.String.Marshal(v.Unit, bs[n:])
	return
}

func (s ingredientMUS) Unmarshal(bs []byte) (v Ingredient, n int, err error) {
	var n1 int
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Amount, n1, err = raw.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Unit, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s ingredientMUS) Size(v Ingredient) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += raw.Float64.Size(v.Amount)
	size += ord.String.Size(v.Unit)
	return
}

func (s ingredientMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ingredientSliceMUS = ord.NewSliceSer[Ingredient](IngredientMUS)

type recipeMUS struct{}

var _ mus.Serializer[Recipe] = recipeMUS{}

func (s recipeMUS) Marshal(v Recipe, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += varint.Int.Marshal(v.ReadyInMinutes, bs[n:])
	n += varint.Int.Marshal(v.Servings, bs[n:])
	n += ord.String.Marshal(v.Image, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	n += ord.String.Marshal(v.SourceURL, bs[n:])
	n += StringSliceMUS.Marshal(v.Cuisines, bs[n:])
	n += StringSliceMUS.Marshal(v.Diets, bs[n:])
	n += StringSliceMUS.Marshal(v.DishTypes, bs[n:])
	n += ingredientSliceMUS.Marshal(v.Ingredients, bs[n:])
	return
}

func (s recipeMUS) Unmarshal(bs []byte) (v Recipe, n int, err error) {
	var n1 int
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ReadyInMinutes, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Servings, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Image, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Summary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SourceURL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Cuisines, n1, err = StringSliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Diets, n1, err = StringSliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DishTypes, n1, err = StringSliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Ingredients, n1, err = ingredientSliceMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s recipeMUS) Size(v Recipe) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Title)
	size += varint.Int.Size(v.ReadyInMinutes)
	size += varint.Int.Size(v.Servings)
	size += ord.String.Size(v.Image)
	size += ord.String.Size(v.Summary)
	size += ord.String.Size(v.SourceURL)
	size += StringSliceMUS.Size(v.Cuisines)
	size += StringSliceMUS.Size(v.Diets)
	size += StringSliceMUS.Size(v.DishTypes)
	size += ingredientSliceMUS.Size(v.Ingredients)
	return
}

func (s recipeMUS) Skip(bs []byte) (n int, err error) {
	v, n, err := s.Unmarshal(bs)
	_ = v
	return
}

type boostersMUS struct{}

var _ mus.Serializer[Boosters] = boostersMUS{}

func (s boostersMUS) Marshal(v Boosters, bs []byte) (n int) {
	n = StringSliceMUS.Marshal(v.Cuisines, bs)
	n += StringSliceMUS.Marshal(v.Diets, bs[n:])
	n += StringSliceMUS.Marshal(v.MealTypes, bs[n:])
	n += StringSliceMUS.Marshal(v.TimeBuckets, bs[n:])
	n += StringSliceMUS.Marshal(v.Difficulties, bs[n:])
	return
}

func (s boostersMUS) Unmarshal(bs []byte) (v Boosters, n int, err error) {
	var n1 int
	v.Cuisines, n, err = StringSliceMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Diets, n1, err = StringSliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.MealTypes, n1, err = StringSliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TimeBuckets, n1, err = StringSliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Difficulties, n1, err = StringSliceMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s boostersMUS) Size(v Boosters) (size int) {
	size = StringSliceMUS.Size(v.Cuisines)
	size += StringSliceMUS.Size(v.Diets)
	size += StringSliceMUS.Size(v.MealTypes)
	size += StringSliceMUS.Size(v.TimeBuckets)
	size += StringSliceMUS.Size(v.Difficulties)
	return
}

func (s boostersMUS) Skip(bs []byte) (n int, err error) {
	v, n, err := s.Unmarshal(bs)
	_ = v
	return
}

type userProfileMUS struct{}

var _ mus.Serializer[UserProfile] = userProfileMUS{}

func (s userProfileMUS) Marshal(v UserProfile, bs []byte) (n int) {
	n = ord.String.Marshal(v.UserId, bs)
	n += StringSliceMUS.Marshal(v.Allergies, bs[n:])
	n += StringSliceMUS.Marshal(v.Ingredients, bs[n:])
	n += BoostersMUS.Marshal(v.Preferences, bs[n:])
	n += timeSer.Marshal(v.InsertedAt, bs[n:])
	n += timeSer.Marshal(v.UpdatedAt, bs[n:])
	return
}

func (s userProfileMUS) Unmarshal(bs []byte) (v UserProfile, n int, err error) {
	var n1 int
	v.UserId, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Allergies, n1, err = StringSliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Ingredients, n1, err = StringSliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Preferences, n1, err = BoostersMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = timeSer.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = timeSer.Unmarshal(bs[n:])
	n += n1
	return
}

func (s userProfileMUS) Size(v UserProfile) (size int) {
	size = ord.String.Size(v.UserId)
	size += StringSliceMUS.Size(v.Allergies)
	size += StringSliceMUS.Size(v.Ingredients)
	size += BoostersMUS.Size(v.Preferences)
	size += timeSer.Size(v.InsertedAt)
	size += timeSer.Size(v.UpdatedAt)
	return
}

func (s userProfileMUS) Skip(bs []byte) (n int, err error) {
	v, n, err := s.Unmarshal(bs)
	_ = v
	return
}
