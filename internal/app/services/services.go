package services

// Services defined in this package:
// - ActivityService: Handles event, workshop and hackathon listings
// - MediaService: Handles the unified gallery across platforms
// - TeamService: Handles the member roster and core-team mapping
// - ClubService: Handles the club profile and join channels
