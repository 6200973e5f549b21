package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ========== MongoDB ==========
var _ PlanStore = (*mongoStore)(nil)

type mongoStore struct {
	client *mongo.Client
	plans  *mongo.Collection
}

func newMongoStore(uri, database string) (*mongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	plans := client.Database(database).Collection("travel_plans")
	_, err = plans.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}

	log.Println("MongoDB connected")
	return &mongoStore{client: client, plans: plans}, nil
}

func (s *mongoStore) CreatePlan(ctx context.Context, plan *TravelPlan) error {
	if _, err := s.plans.InsertOne(ctx, plan); err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

func (s *mongoStore) FindPlan(ctx context.Context, id string) (*TravelPlan, error) {
	var plan TravelPlan
	err := s.plans.FindOne(ctx, bson.M{"id": id}).Decode(&plan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find plan: %w", err)
	}
	return &plan, nil
}

func (s *mongoStore) FindPlans(ctx context.Context, filter PlanFilter) ([]*TravelPlan, error) {
	query := bson.M{}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.plans.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find plans: %w", err)
	}
	defer cursor.Close(ctx)

	list := []*TravelPlan{}
	for cursor.Next(ctx) {
		var p TravelPlan
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode plan: %w", err)
		}
		list = append(list, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}
	return list, nil
}

func (s *mongoStore) UpdatePlan(ctx context.Context, id string, upd PlanUpdate) (*TravelPlan, error) {
	plan, err := s.FindPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	applyUpdate(plan, upd)

	// 只 $set 會變動的欄位
	set := bson.M{"updated_at": plan.UpdatedAt}
	if upd.Title != nil {
		set["title"] = plan.Title
	}
	if upd.Request != nil {
		set["request"] = plan.Request
	}
	if upd.Content != nil || upd.Request != nil {
		set["content"] = plan.Content
		set["itinerary"] = plan.Itinerary
		set["route"] = plan.Route
		set["schedule"] = plan.Schedule
	}

	result, err := s.plans.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, errPlanNotFound
	}
	return plan, nil
}

func (s *mongoStore) DeletePlan(ctx context.Context, id string) error {
	result, err := s.plans.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if result.DeletedCount == 0 {
		return errPlanNotFound
	}
	return nil
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
