package store

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogql/backend/internal/models"
)

func strptr(s string) *string { return &s }

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// Seed loads the demo dataset: three users, three published posts plus one
// draft, and a small comment thread. All seed accounts use the password
// "password123".
func (s *MemoryStore) Seed() {
	password, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	john := &models.User{
		ID:        uuid.NewString(),
		Username:  "john_doe",
		Email:     "john@example.com",
		Password:  string(password),
		FirstName: strptr("John"),
		LastName:  strptr("Doe"),
		Avatar:    strptr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150"),
		Bio:       strptr("Software developer and tech enthusiast"),
		Followers: []string{},
		Following: []string{},
		CreatedAt: date("2024-01-15"),
		UpdatedAt: date("2024-01-15"),
	}
	jane := &models.User{
		ID:        uuid.NewString(),
		Username:  "jane_smith",
		Email:     "jane@example.com",
		Password:  string(password),
		FirstName: strptr("Jane"),
		LastName:  strptr("Smith"),
		Avatar:    strptr("https://images.unsplash.com/photo-1494790108755-2616b056b8e4?w=150"),
		Bio:       strptr("UI/UX Designer passionate about creating beautiful experiences"),
		Followers: []string{},
		Following: []string{},
		CreatedAt: date("2024-01-20"),
		UpdatedAt: date("2024-01-20"),
	}
	alex := &models.User{
		ID:        uuid.NewString(),
		Username:  "tech_guru",
		Email:     "guru@example.com",
		Password:  string(password),
		FirstName: strptr("Alex"),
		LastName:  strptr("Johnson"),
		Avatar:    strptr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150"),
		Bio:       strptr("Full-stack developer and technology consultant"),
		Followers: []string{},
		Following: []string{},
		CreatedAt: date("2024-02-01"),
		UpdatedAt: date("2024-02-01"),
	}
	for _, u := range []*models.User{john, jane, alex} {
		s.InsertUser(u)
	}

	posts := []*models.Post{
		{
			ID:        uuid.NewString(),
			Title:     "Getting Started with GraphQL",
			Content:   "GraphQL is a powerful query language for APIs that provides a complete and understandable description of the data in your API...",
			Excerpt:   "Learn the basics of GraphQL and how to implement it in your applications.",
			Slug:      "getting-started-with-graphql",
			AuthorID:  john.ID,
			Tags:      []string{"GraphQL", "API", "JavaScript"},
			Published: true,
			Likes:     []string{},
			CreatedAt: date("2024-02-15"),
			UpdatedAt: date("2024-02-15"),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Modern UI Design Principles",
			Content:   "User interface design has evolved significantly over the years. Modern UI design focuses on simplicity, accessibility, and user experience...",
			Excerpt:   "Explore the key principles that guide modern user interface design.",
			Slug:      "modern-ui-design-principles",
			AuthorID:  jane.ID,
			Tags:      []string{"UI Design", "UX", "Design"},
			Published: true,
			Likes:     []string{},
			CreatedAt: date("2024-02-20"),
			UpdatedAt: date("2024-02-20"),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Building Scalable APIs with Node.js",
			Content:   "Node.js has become a popular choice for building APIs due to its performance and scalability. In this post, we will explore best practices...",
			Excerpt:   "Best practices for building scalable and maintainable APIs using Node.js.",
			Slug:      "building-scalable-apis-nodejs",
			AuthorID:  alex.ID,
			Tags:      []string{"Node.js", "API", "Backend", "JavaScript"},
			Published: true,
			Likes:     []string{},
			CreatedAt: date("2024-02-25"),
			UpdatedAt: date("2024-02-25"),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Draft: Future of Web Development",
			Content:   "This is a draft post about the future trends in web development...",
			Excerpt:   "A look into the future trends and technologies in web development.",
			Slug:      "future-of-web-development",
			AuthorID:  john.ID,
			Tags:      []string{"Web Development", "Future", "Technology"},
			Published: false,
			Likes:     []string{},
			CreatedAt: date("2024-03-01"),
			UpdatedAt: date("2024-03-01"),
		},
	}
	for _, p := range posts {
		s.InsertPost(p)
	}

	first := &models.Comment{
		ID:        uuid.NewString(),
		Content:   "Great introduction to GraphQL! Very helpful for beginners.",
		AuthorID:  jane.ID,
		PostID:    posts[0].ID,
		Likes:     []string{},
		CreatedAt: date("2024-02-16"),
		UpdatedAt: date("2024-02-16"),
	}
	reply := &models.Comment{
		ID:              uuid.NewString(),
		Content:         "I agree! The examples really helped me understand the concepts.",
		AuthorID:        alex.ID,
		PostID:          posts[0].ID,
		ParentCommentID: &first.ID,
		Likes:           []string{},
		CreatedAt:       date("2024-02-17"),
		UpdatedAt:       date("2024-02-17"),
	}
	second := &models.Comment{
		ID:        uuid.NewString(),
		Content:   "These design principles are exactly what I needed for my current project.",
		AuthorID:  john.ID,
		PostID:    posts[1].ID,
		Likes:     []string{},
		CreatedAt: date("2024-02-21"),
		UpdatedAt: date("2024-02-21"),
	}
	for _, c := range []*models.Comment{first, reply, second} {
		s.InsertComment(c)
	}
}
